/*
Package evaluator turns calculator expressions into numbers without any dynamic code execution.

Evaluate applies the percentage sugar ("50%" becomes "50/100"), rejects every character
outside the arithmetic alphabet, and then parses the text with a small recursive-descent
parser that honors the usual precedence (* and / before + and -), unary signs and
parenthesized groups. All failures match domain.ErrEvaluation.

Round and Format produce the display representation of a value: rounded half-up to a fixed
number of decimal places and printed in plain decimal notation.
*/
package evaluator
