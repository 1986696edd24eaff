package l10n

// Host-provided side-effecting functions. The host registers whichever of
// these it implements; nil handlers are skipped when wrapping. The wrapped
// variants pass every message or unit-label argument through the Resolver
// and leave control flow, return values and remaining arguments untouched.

// NotifyFunc surfaces a transient toast-style message.
type NotifyFunc func(message, level string)

// ConfirmFunc shows a blocking confirmation dialog and reports the choice.
type ConfirmFunc func(message string) bool

// PromptFunc shows a blocking input dialog with an initial value. The
// second result is false when the user cancelled.
type PromptFunc func(message, initial string) (string, bool)

// FormatFunc builds a short HTML fragment showing a value with a trailing
// unit label, e.g. `256.0 <span class="unit">MB</span>`.
type FormatFunc func(value float64, unit string) string

// Hooks is the set of host handlers subject to side-effect interception.
type Hooks struct {
	Notify     NotifyFunc
	Confirm    ConfirmFunc
	Prompt     PromptFunc
	FormatSize FormatFunc
	FormatRate FormatFunc
}

// wrap returns a copy of h whose non-nil handlers localize their message
// and unit-label arguments through translate at call time. translate is
// consulted on every invocation, so the wrapped handlers follow language
// switches without re-wrapping.
func (h Hooks) wrap(translate func(string) string) Hooks {
	wrapped := Hooks{}
	if h.Notify != nil {
		inner := h.Notify
		wrapped.Notify = func(message, level string) {
			inner(translate(message), level)
		}
	}
	if h.Confirm != nil {
		inner := h.Confirm
		wrapped.Confirm = func(message string) bool {
			return inner(translate(message))
		}
	}
	if h.Prompt != nil {
		inner := h.Prompt
		wrapped.Prompt = func(message, initial string) (string, bool) {
			return inner(translate(message), initial)
		}
	}
	if h.FormatSize != nil {
		inner := h.FormatSize
		wrapped.FormatSize = func(value float64, unit string) string {
			return inner(value, translate(unit))
		}
	}
	if h.FormatRate != nil {
		inner := h.FormatRate
		wrapped.FormatRate = func(value float64, unit string) string {
			return inner(value, translate(unit))
		}
	}
	return wrapped
}
