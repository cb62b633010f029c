package i

// Logger is the component logger the services write to.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
