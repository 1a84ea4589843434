package cmd

import "fmt"

// ExitCodeError signals a non-zero exit code without calling os.Exit
// directly, so Run stays testable and main.go owns the actual process exit.
type ExitCodeError struct{ Code int }

func (e ExitCodeError) Error() string { return fmt.Sprintf("exit %d", e.Code) }
