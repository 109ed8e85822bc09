/*
Package mrp compiles Match-Replace Protocol expressions into file name matchers.

	+---------+    +--------+    +---------+    +----------+
	|  Lexer  | -> | Parser | -> | Checker | -> | Compiler |
	+---------+    +--------+    +---------+    +----+-----+
	                                                 |
	                                     +-----------+-----------+
	                                     |                       |
	                               +-----+-----+           +-----+-----+
	                               |  Matcher  |           | Formatter |
	                               +-----------+           +-----------+

🎯 Purpose:
- Replace raw regular expressions with a small typed pattern language
- Reject malformed or inconsistent expressions before any file is touched
- Round-trip captured values exactly, leading zeros included

📝 Grammar:

	expression := pattern "->" template
	pattern    := (literal | "(" ident [":" type] ")")*
	template   := (literal | "(" ident ")")+
	type       := "int" | "str"        (default str)
	literal    := any text except "(", ")" and "->"

🔍 Example:

	expr := "g-(g:int)-a-(a:int)->artist-(a)-genre-(g)"
	r, err := mrp.New(expr)
	if err != nil {
		fmt.Println(mrp.Diagnostic(expr, err))
		return
	}
	out, ok := r.Apply("g-0001-a-0002") // "artist-0002-genre-0001", true

⚡ Matching rules:
- literals match byte for byte
- int captures take the longest run of ASCII digits (at least one)
- str captures take the shortest run, possibly empty, ending at the first occurrence
  of the next literal, or run to the end of input when last
- the whole input must be consumed
*/
package mrp
