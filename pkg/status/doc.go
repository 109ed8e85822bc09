/*
Package status holds the vocabulary of rename outcomes and the filesystem
surface the executor talks to.

	      +-------------+
	      |   Status    |
	      |  (Outcome)  |
	      +------+------+
	             |
	   +---------+---------+
	   |                   |
	+--+----------+   +----+------+
	| FileManager |   | Formatter |
	|  (Lstat,    |   |  (UI/UX)  |
	|   Rename)   |   +-----------+
	+-------------+

🎯 Purpose:
- Names what happened to each file (renamed, planned, skipped, failed)
- Explains skipped and failed outcomes with a Reason
- Abstracts the two filesystem calls a rename needs

⚡ Key Responsibilities:
- Status and Reason values with stable string forms
- FileManager backed by package os
- Human readable outcome lines for logs and the terminal

📝 Design Philosophy:
Nothing here decides whether a rename should happen. The operation package
owns collision detection and ordering; status only describes the result and
performs the single filesystem call it is told to perform.
*/
package status
