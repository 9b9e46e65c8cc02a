package device

import "fmt"

// SyntaxError reports a command or entry line that matched no recognized grammar.
type SyntaxError struct {
	Line string
}

func (syntaxError *SyntaxError) Error() string {
	return fmt.Sprintf("no grammar matches line %q", syntaxError.Line)
}

// NotFoundError reports navigation to a child name absent from the current directory.
type NotFoundError struct {
	Name string
}

func (notFoundError *NotFoundError) Error() string {
	return fmt.Sprintf("no entry named %q in current directory", notFoundError.Name)
}

// WrongTypeError reports a directory-only operation attempted on a file node.
type WrongTypeError struct {
	Operation string
}

func (wrongTypeError *WrongTypeError) Error() string {
	return fmt.Sprintf("operation %q requires a directory node", wrongTypeError.Operation)
}
