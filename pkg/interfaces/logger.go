package interfaces

// Logger is the console transcript the operator reads during a run.
type Logger interface {
	Info(message string)
	Error(message string)
	Warn(message string)
	Debug(message string)
}
