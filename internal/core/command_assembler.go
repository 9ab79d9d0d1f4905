package core

import (
	"fmt"
	"strings"

	"helmdeploy/internal/core/domain"

	"al.essio.dev/pkg/shellescape"
)

const prettySeparator = " \\\n  "

// Token is one element of the command line. Flag is empty for positional
// arguments; Value is already quoted for the shell.
type Token struct {
	Flag  string
	Value string
}

func (t Token) String() string {
	switch {
	case t.Flag == "":
		return t.Value
	case t.Value == "":
		return t.Flag
	default:
		return t.Flag + " " + t.Value
	}
}

func positional(value string) Token {
	return Token{Value: shellescape.Quote(value)}
}

func flag(name string) Token {
	return Token{Flag: name}
}

func flagWithValue(name, value string) Token {
	return Token{Flag: name, Value: shellescape.Quote(value)}
}

// setFlag renders --set path='value'. The value is wrapped in single quotes
// whatever it contains.
func setFlag(path, value string) Token {
	return Token{Flag: "--set", Value: path + "=" + singleQuote(value)}
}

func singleQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'"'"'`) + "'"
}

// Command is an assembled helm invocation. The head holds the binary, global
// flags, verb and release name; the rest are the flags and chart reference.
type Command struct {
	head   []Token
	tokens []Token
}

// Tokens returns every token in order.
func (c Command) Tokens() []Token {
	all := make([]Token, 0, len(c.head)+len(c.tokens))
	all = append(all, c.head...)
	return append(all, c.tokens...)
}

// String joins the tokens into a single shell command line.
func (c Command) String() string {
	return joinTokens(c.Tokens(), " ")
}

// Pretty renders one flag per continuation line, for display.
func (c Command) Pretty() string {
	head := joinTokens(c.head, " ")
	if len(c.tokens) == 0 {
		return head
	}
	return head + prettySeparator + joinTokens(c.tokens, prettySeparator)
}

func joinTokens(tokens []Token, separator string) string {
	parts := make([]string, len(tokens))
	for i, token := range tokens {
		parts[i] = token.String()
	}
	return strings.Join(parts, separator)
}

// CommandAssembler builds the helm upgrade command line for a target.
type CommandAssembler struct{}

func ProvideCommandAssembler() *CommandAssembler {
	return &CommandAssembler{}
}

// Assemble emits, in order: the base invocation, secrets, config values, env
// overrides, extra arguments, the version flag and the chart reference. Secret
// and config values are redacted under dry run; env values never are.
func (a *CommandAssembler) Assemble(
	target domain.DeploymentTarget,
	secrets []domain.NamedValue,
	configs []domain.NamedValue,
	envs []domain.EnvEntry,
) Command {
	var command Command

	command.head = append(command.head, positional(target.HelmBinary))
	if target.KubeconfigFile != "" {
		command.head = append(command.head, flagWithValue("--kubeconfig", target.KubeconfigFile))
	}
	command.head = append(command.head, positional("upgrade"), positional(target.Name))

	command.tokens = append(command.tokens, flag("--install"), flag("--create-namespace"))
	if target.Namespace != "" {
		command.tokens = append(command.tokens, flagWithValue("--namespace", target.Namespace))
	}
	if target.ImageTag != "" {
		command.tokens = append(command.tokens, Token{Flag: "--set", Value: shellescape.Quote("image.tag=" + target.ImageTag)})
	}

	command.tokens = append(command.tokens, namedValueFlags(target.SecretSlot, secrets, target.DryRun)...)
	command.tokens = append(command.tokens, namedValueFlags(target.ConfigSlot, configs, target.DryRun)...)

	for i, env := range envs {
		command.tokens = append(command.tokens,
			setFlag(fmt.Sprintf("%s[%d].name", target.EnvVarSlot, i), env.Name),
			setFlag(fmt.Sprintf("%s[%d].value", target.EnvVarSlot, i), Escape(env.Value)),
		)
	}

	for _, arg := range target.ExtraArgs {
		command.tokens = append(command.tokens, positional(arg))
	}

	if target.ChartVersion != "" {
		command.tokens = append(command.tokens, flagWithValue("--version", target.ChartVersion))
	}

	command.tokens = append(command.tokens, positional(target.ChartURL))

	return command
}

func namedValueFlags(slot string, values []domain.NamedValue, redact bool) []Token {
	tokens := make([]Token, 0, 2*len(values))
	for i, value := range values {
		emitted := domain.RedactionPlaceholder
		if !redact {
			emitted = Escape(value.Value)
		}
		tokens = append(tokens,
			setFlag(fmt.Sprintf("%s[%d].key", slot, i), value.Key),
			setFlag(fmt.Sprintf("%s[%d].value", slot, i), emitted),
		)
	}
	return tokens
}
