/*
Package sequences builds the standard ECMA-48 control sequences.

A control sequence is CSI, followed by zero or more parameters separated by
03/11, optionally the intermediate byte 02/00, and a final byte. Programs use
them to move the active position, erase parts of the presentation, select
graphic renditions, and more.

Each builder is named after the function's mnemonic and returns a
control.ControlFunction. Numeric arguments of 0 select the parameter default,
which is 1 unless noted otherwise. Selective arguments use the typed
constants of this package, whose zero value is the default.

Builders always emit at least one parameter, so the rendered form decodes
back into an equal value.

Functions that take a private or free-form parameter string, like private
use sequences, are built with control.PrivateUse or control.NewSequence.
*/
package sequences
