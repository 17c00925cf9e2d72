package logger

import (
	"encoding/json"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// prettyEncoder writes a console line with a colored level and prints
// structured fields below it as indented JSON.
//
// The embedded JSON encoder accumulates fields added with With; the console
// encoder never holds context and only renders the entry header.
type prettyEncoder struct {
	zapcore.Encoder
	console zapcore.Encoder
	pool    buffer.Pool
}

func newPrettyEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	return &prettyEncoder{
		Encoder: zapcore.NewJSONEncoder(cfg),
		console: zapcore.NewConsoleEncoder(cfg),
		pool:    buffer.NewPool(),
	}
}

func (e *prettyEncoder) Clone() zapcore.Encoder {
	return &prettyEncoder{
		Encoder: e.Encoder.Clone(),
		console: e.console,
		pool:    e.pool,
	}
}

func (e *prettyEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	line, err := e.console.EncodeEntry(entry, nil)
	if err != nil {
		return nil, err
	}
	out := colorizeLevel(strings.TrimRight(line.String(), "\n"), entry.Level)
	line.Free()

	fieldBuf, err := e.Encoder.EncodeEntry(entry, fields)
	if err != nil {
		return nil, err
	}
	out += prettyFields(fieldBuf.Bytes())
	fieldBuf.Free()

	buf := e.pool.Get()
	buf.AppendString(out)
	buf.AppendString("\n")
	return buf, nil
}

// prettyFields drops keys already printed on the console line and indents the rest.
func prettyFields(raw []byte) string {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return " " + strings.TrimSpace(string(raw))
	}

	for _, k := range []string{messageKey, levelKey, timeKey, callerKey, nameKey} {
		delete(fields, k)
	}
	if len(fields) == 0 {
		return ""
	}

	indented, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		return " " + strings.TrimSpace(string(raw))
	}
	return "\n" + string(indented)
}

func colorizeLevel(line string, level zapcore.Level) string {
	var c *color.Color

	switch level {
	case zapcore.DebugLevel:
		c = color.New(color.FgCyan)
	case zapcore.InfoLevel:
		c = color.New(color.FgGreen)
	case zapcore.WarnLevel:
		c = color.New(color.FgYellow)
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		c = color.New(color.FgRed, color.Bold)
	case zapcore.InvalidLevel:
		c = color.New(color.FgMagenta)
	default:
		return line
	}

	lvl := level.CapitalString()
	return strings.Replace(line, lvl, c.Sprint(lvl), 1)
}
