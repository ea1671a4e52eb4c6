// Package logger is a thin factory around log/slog used by the strkit packages
// and the strkit command.
//
// New builds a *slog.Logger from functional options:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the handler.
//   - WithLevel sets the minimum level; ParseLevel maps config strings to levels.
//   - WithAttr adds static attributes to every record.
//   - WithContextExtractors / WithContextValue inject attributes from a
//     context.Context each time a record is handled.
//   - WithCLI applies terminal defaults: text on stderr at WARN.
//
// Attribute helpers such as Error, Pattern and InputLength keep key names
// consistent. InputLength exists so that callers never log raw input, which
// may be a card number or an e-mail address.
//
//	log := logger.New(logger.WithCLI("strkit"), logger.WithLevel(slog.LevelDebug))
//	log.Warn("pattern compile failed", logger.Pattern(src), logger.Error(err))
package logger
