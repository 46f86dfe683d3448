package assembler

import "errors"

var (
	errLeadingComma     = errors.New("unexpected comma")
	errTrailingComma    = errors.New("trailing comma")
	errConsecutiveComma = errors.New("consecutive commas")
	errTooManyOperands  = errors.New("too many operands")
	errMissingOperand   = errors.New("missing operand")
	errUnterminatedStr  = errors.New("unterminated string")
	errUnknownMnemonic  = errors.New("unknown instruction")
	errUnknownDirective = errors.New("unknown directive")
	errInvalidLabel     = errors.New("invalid label name")
	errOversizeLine     = errors.New("line exceeds maximum length")
	errDuplicateSymbol  = errors.New("symbol already defined")
	errUndefinedSymbol  = errors.New("undefined symbol")
	errConflictingKinds = errors.New("symbol is both external and entry")
	errLabelOnDirective  = errors.New("label not permitted here")
	errAddressingNotAllowed = errors.New("addressing mode not allowed for this opcode")
)
