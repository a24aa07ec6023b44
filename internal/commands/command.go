package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeSearch Type = "search"
	TypeClear  Type = "clear"
	TypeHide   Type = "hide"
	TypeCheck  Type = "check"
	TypeDelete Type = "delete"
	TypeEdit   Type = "edit"
	TypeRename Type = "rename"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Name string
}

type SearchArgs struct {
	Term string
}

// TargetArgs names a visible row by its 1-based position.
type TargetArgs struct {
	Position int
}

type RenameArgs struct {
	Position int
	Name     string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Search *SearchArgs
	Target *TargetArgs
	Rename *RenameArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, ":") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, ":"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeSearch:
		return Command{Type: TypeSearch, Raw: input, Search: &SearchArgs{Term: strings.Join(args, " ")}}, nil
	case TypeClear, TypeHide:
		if len(args) > 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes no arguments", head)}
		}
		return Command{Type: Type(head), Raw: input}, nil
	case TypeCheck, TypeDelete, TypeEdit:
		return parseTarget(input, Type(head), args)
	case TypeRename:
		return parseRename(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a name"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Name: name}}, nil
}

func parseTarget(raw string, typ Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a row number", typ)}
	}
	pos, err := parsePosition(args[0])
	if err != nil {
		return Command{}, err
	}
	return Command{Type: typ, Raw: raw, Target: &TargetArgs{Position: pos}}, nil
}

func parseRename(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "rename requires a row number and a name"}
	}
	pos, err := parsePosition(args[0])
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeRename, Raw: raw, Rename: &RenameArgs{Position: pos, Name: strings.Join(args[1:], " ")}}, nil
}

func parsePosition(s string) (int, error) {
	pos, err := strconv.Atoi(s)
	if err != nil || pos < 1 {
		return 0, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid row number: %s", s)}
	}
	return pos, nil
}
