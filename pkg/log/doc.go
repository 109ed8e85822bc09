/*
Package log prints rename batches for humans and mirrors them to zerolog.

🎯 Purpose:
- One colored line per outcome, written as outcomes are reported
- Batch header and pterm summary table
- Plain status messages (info, warning, error, success)

The Logger serializes writes, so outcomes from parallel groups never interleave
within a line.
*/
package log
