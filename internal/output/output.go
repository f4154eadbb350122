// Package output renders brik results as styled text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/nazcamedia/brik/internal/config"
	"github.com/nazcamedia/brik/internal/styles"
)

// Result describes one computed value. When Expr is set, text mode prints
// "<expr>=<value>" instead of the bare value.
type Result struct {
	Message string   `json:"message,omitempty"`
	Op      string   `json:"op"`
	Args    []string `json:"args"`
	Expr    string   `json:"expr,omitempty"`
	Value   any      `json:"value"`
}

// Response is the JSON envelope written for every command.
type Response struct {
	Status string    `json:"status"`
	Data   any       `json:"data,omitempty"`
	Error  *ErrorMsg `json:"error,omitempty"`
}

// ErrorMsg is the error payload of a JSON response.
type ErrorMsg struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Formatter writes results in the configured format.
type Formatter struct {
	Format    string
	Color     bool
	Writer    io.Writer
	ErrWriter io.Writer
}

// Success writes a result.
func (f *Formatter) Success(r Result) error {
	if f.Format == config.FormatJSON {
		data := r
		data.Value = jsonValue(r.Value)
		return json.NewEncoder(f.Writer).Encode(Response{Status: "ok", Data: data})
	}

	if r.Message != "" {
		if _, err := fmt.Fprintln(f.Writer, f.render(styles.BoldStyle, r.Message)); err != nil {
			return err
		}
	}

	value := f.renderValue(r.Value)
	if r.Expr != "" {
		value = r.Expr + "=" + value
	}
	_, err := fmt.Fprintln(f.Writer, value)
	return err
}

// Error reports err. JSON errors go to Writer so callers always get one
// JSON document; text errors go to ErrWriter.
func (f *Formatter) Error(err error) error {
	code := errorCode(GetExitCode(err))

	if f.Format == config.FormatJSON {
		return json.NewEncoder(f.Writer).Encode(Response{
			Status: "error",
			Error:  &ErrorMsg{Code: code, Message: err.Error()},
		})
	}

	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	_, werr := fmt.Fprintf(w, "%s %s\n", f.render(styles.ErrorStyle, "Error:"), err.Error())
	return werr
}

func (f *Formatter) render(style lipgloss.Style, s string) string {
	out := style.Render(s)
	if !f.Color {
		out = ansi.Strip(out)
	}
	return out
}

func (f *Formatter) renderValue(v any) string {
	s := FormatValue(v)
	switch b := v.(type) {
	case bool:
		if b {
			return f.render(styles.TrueStyle, s)
		}
		return f.render(styles.FalseStyle, s)
	default:
		return f.render(styles.ValueStyle, s)
	}
}

// FormatValue returns the plain text form of a result value.
func FormatValue(v any) string {
	switch x := v.(type) {
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// jsonValue converts floats to strings since JSON cannot encode NaN or Inf.
func jsonValue(v any) any {
	if x, ok := v.(float64); ok {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return v
}
