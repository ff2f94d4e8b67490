/*
Package logscope is a minimal scoped-logging facility for Go, designed to let
independent libraries log under their own named scope while a single host
application controls verbosity per scope from one place. A Controller hands
out scopes keyed by identity, each with its own severity threshold, and a
threshold can be frozen with a one-way lock after which further changes are
silently ignored.

Info lines are written to standard output, debug, warn and error lines to
standard error; the error level prints as "error".

Please see https://github.com/apperia-de/logscope for more details.
*/
package logscope
