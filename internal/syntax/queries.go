package syntax

// Highlight queries, one per supported grammar. Capture names follow the
// usual tree-sitter convention: only the segment before the first dot decides
// the highlight tag, so "function.method" and "function" color alike.

const cppHighlights = `
(comment) @comment

(number_literal) @number

(string_literal) @string
(char_literal) @string
(raw_string_literal) @string
(concatenated_string) @string
(system_lib_string) @string

(preproc_directive) @keyword

(primitive_type) @type
(type_identifier) @type

(field_identifier) @property

(call_expression
  function: (identifier) @function)
(call_expression
  function: (field_expression
    field: (field_identifier) @function.method))
(function_definition
  declarator: (function_declarator
    declarator: (identifier) @function))

(true) @constant
(false) @constant

[
  "if" "else" "for" "while" "do" "return" "break" "continue"
  "switch" "case" "struct" "class" "enum" "union" "typedef"
  "namespace" "using" "template" "const" "static"
  "new" "delete" "try" "catch" "throw"
] @keyword

[
  "+" "-" "*" "/" "=" "==" "!=" "<" ">" "<=" ">="
  "&&" "||" "!" "+=" "-=" "->"
] @operator

[ "(" ")" "[" "]" "{" "}" ] @punctuation.bracket
[ ";" "," "." ] @punctuation.delimiter
`

const pythonHighlights = `
(comment) @comment

(string) @string

(integer) @number
(float) @number

(true) @constant
(false) @constant
(none) @constant

(function_definition
  name: (identifier) @function)
(class_definition
  name: (identifier) @type)
(call
  function: (identifier) @function)
(call
  function: (attribute
    attribute: (identifier) @function.method))

(decorator) @function

[
  "def" "class" "if" "elif" "else" "for" "while" "return"
  "import" "from" "as" "with" "lambda" "pass" "break" "continue"
  "in" "and" "or" "not" "try" "except" "finally" "raise"
  "yield" "global" "assert" "del" "is"
] @keyword

[
  "+" "-" "*" "/" "%" "**" "//" "==" "!=" "<" ">" "<=" ">=" "="
] @operator

[ "(" ")" "[" "]" "{" "}" ] @punctuation.bracket
[ "," ":" "." ] @punctuation.delimiter
`

// HLSL rides on the C++ grammar, so the query speaks in C++ node names. The
// capture set is narrower: no keyword-token list, since HLSL-specific
// keywords parse as plain identifiers under the borrowed grammar.
const hlslHighlights = `
(comment) @comment

(number_literal) @number

(string_literal) @string
(raw_string_literal) @string
(concatenated_string) @string
(system_lib_string) @string

(preproc_directive) @keyword

(primitive_type) @type
(type_identifier) @type

(field_identifier) @property

(call_expression
  function: (identifier) @function)
(function_definition
  declarator: (function_declarator
    declarator: (identifier) @function))
`
