/*
Package text provides the plain regular expression rename strategy.

🎯 Purpose:
- Backs the regex command for renames that need full regexp power
- Shares the Apply(name) (string, bool) contract with compiled MRP expressions
*/
package text
