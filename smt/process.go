package smt

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/gilsat/gilsat"
	"github.com/pkg/errors"
)

// Backend is the command/response channel to a solver. One backend carries
// one incremental session; commands block until the solver answers.
type Backend interface {
	// Send issues commands that produce no response.
	Send(commands []string) error

	// CheckSat issues check-sat and reads the verdict.
	CheckSat() (Verdict, error)

	// Model issues get-model and returns the raw response text.
	Model() (string, error)

	Close() error
}

// Ensure the subprocess backend implements the interface.
var _ Backend = (*solverProcess)(nil)

// solverProcess runs the solver binary and speaks SMT-LIB over its pipes.
type solverProcess struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	out   *bufio.Reader
}

// StartSolver spawns the configured solver and applies the fixed option
// block: models on, proofs and unsat cores off, the per-query timeout, and
// solver auto-configuration.
func StartSolver(config Config) (Backend, error) {
	cmd := exec.Command(config.SolverPath, config.SolverArgs...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.Wrap(err, "smt: solver stdin")
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "smt: solver stdout")
	}
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "smt: start solver %s", config.SolverPath)
	}

	p := &solverProcess{cmd: cmd, stdin: stdin, out: bufio.NewReader(stdout)}
	options := []string{
		"(set-option :print-success false)",
		"(set-option :produce-models true)",
		"(set-option :produce-proofs false)",
		"(set-option :produce-unsat-cores false)",
		"(set-option :auto_config true)",
		fmt.Sprintf("(set-option :timeout %d)", config.TimeoutMS),
	}
	if err := p.Send(options); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

// Send writes the commands to the solver. No response is expected.
func (p *solverProcess) Send(commands []string) error {
	for _, command := range commands {
		if _, err := io.WriteString(p.stdin, command+"\n"); err != nil {
			return errors.Wrap(err, "smt: write to solver")
		}
	}
	return nil
}

// CheckSat issues check-sat and blocks until the verdict line arrives.
func (p *solverProcess) CheckSat() (Verdict, error) {
	if err := p.Send([]string{"(check-sat)"}); err != nil {
		return VerdictUnknown, err
	}
	line, err := p.readLine()
	if err != nil {
		return VerdictUnknown, err
	}
	switch line {
	case "sat":
		return VerdictSat, nil
	case "unsat":
		return VerdictUnsat, nil
	case "unknown":
		return VerdictUnknown, nil
	default:
		return VerdictUnknown, errors.Wrapf(gilsat.ErrSolverProtocol, "check-sat answered %q", line)
	}
}

// Model issues get-model and reads one balanced s-expression of response.
func (p *solverProcess) Model() (string, error) {
	if err := p.Send([]string{"(get-model)"}); err != nil {
		return "", err
	}
	text, err := p.readSExprText()
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(text, "(error") {
		return "", errors.Wrapf(gilsat.ErrSolverProtocol, "get-model answered %s", text)
	}
	return text, nil
}

// Close shuts the solver down, first politely, then by force.
func (p *solverProcess) Close() error {
	io.WriteString(p.stdin, "(exit)\n")
	p.stdin.Close()
	if err := p.cmd.Wait(); err != nil {
		p.cmd.Process.Kill()
		return errors.Wrap(err, "smt: solver exit")
	}
	return nil
}

func (p *solverProcess) readLine() (string, error) {
	for {
		line, err := p.out.ReadString('\n')
		if err != nil {
			return "", errors.Wrap(err, "smt: read from solver")
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
	}
}

// readSExprText reads one whitespace-separated balanced s-expression,
// honoring pipe-quoted symbols and string literals.
func (p *solverProcess) readSExprText() (string, error) {
	var sb strings.Builder
	depth := 0
	inPipe := false
	inString := false

	for {
		c, _, err := p.out.ReadRune()
		if err != nil {
			return "", errors.Wrap(err, "smt: read from solver")
		}
		if sb.Len() == 0 && (c == ' ' || c == '\t' || c == '\n' || c == '\r') {
			continue
		}
		sb.WriteRune(c)

		switch {
		case inPipe:
			if c == '|' {
				inPipe = false
			}
		case inString:
			if c == '"' {
				inString = false
			}
		case c == '|':
			inPipe = true
		case c == '"':
			inString = true
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				return sb.String(), nil
			}
		}
	}
}
