// Package errors provides centralized error code definitions for
// tsxcheck. All error codes follow a consistent taxonomy for
// structured, machine-parseable diagnostics.
package errors

// Error code constants organized by phase.
const (
	// ============================================================================
	// Lexer Errors (LEX###)
	// ============================================================================

	// LEX001 indicates an illegal character was encountered.
	LEX001 = "LEX001"

	// LEX002 indicates an unterminated string literal.
	LEX002 = "LEX002"

	// LEX003 indicates an unterminated template literal.
	LEX003 = "LEX003"

	// LEX004 indicates an unterminated block comment.
	LEX004 = "LEX004"

	// ============================================================================
	// Parser Errors (PAR###)
	// ============================================================================

	// PAR001 indicates an unexpected token was encountered during parsing.
	PAR001 = "PAR001"

	// PAR002 indicates a missing closing delimiter (paren, bracket, brace, chevron).
	PAR002 = "PAR002"

	// PAR003 indicates type arguments applied to a non-name reference.
	PAR003 = "PAR003"

	// PAR004 indicates a let/const keyword was expected but not found.
	PAR004 = "PAR004"

	// PAR005 indicates a destructuring binding is missing its required initializer.
	PAR005 = "PAR005"

	// PAR006 indicates a const declaration is missing its required initializer.
	PAR006 = "PAR006"

	// PAR007 indicates a required semicolon was not found and automatic
	// semicolon insertion did not apply.
	PAR007 = "PAR007"

	// PAR008 indicates a malformed conditional type (missing `?`/`:` branch).
	PAR008 = "PAR008"

	// PAR009 indicates an invalid type annotation form.
	PAR009 = "PAR009"

	// PAR010 indicates a partial-syntax marker was produced where
	// options.partial_syntax was not enabled.
	PAR010 = "PAR010"

	// ============================================================================
	// Checker Errors (CHK###)
	// ============================================================================

	// CHK001 indicates a reference to an undeclared named type.
	CHK001 = "CHK001"

	// CHK002 indicates a reference to an undeclared variable.
	CHK002 = "CHK002"

	// CHK003 indicates an attempted operation on an unimplemented root
	// context capability (_union/serialize/deserialize).
	CHK003 = "CHK003"

	// ============================================================================
	// Module System Errors (MOD###)
	// ============================================================================

	// MOD001 indicates a module specifier could not be resolved to a file.
	MOD001 = "MOD001"

	// MOD002 indicates a circular import was detected while loading modules.
	MOD002 = "MOD002"

	// MOD003 indicates an unsupported re-export form.
	MOD003 = "MOD003"

	// MOD004 indicates a duplicate export name within one module.
	MOD004 = "MOD004"

	// MOD005 indicates a module file could not be read from the file
	// system or could not be parsed.
	MOD005 = "MOD005"
)
