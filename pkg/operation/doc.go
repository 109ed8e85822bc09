/*
Package operation executes a rename batch.

	+-------------+
	|   Strategy  |
	| (name->name)|
	+------+------+
	       |
	+------+------+       +-------------+
	|   Runner    +-------+ FileManager |
	| (per group) |       | (os calls)  |
	+------+------+       +-------------+
	       |
	+------+------+
	|   Report    |
	| (outcomes)  |
	+-------------+

🎯 Purpose:
- Applies a Strategy to the base name of every path in a batch
- Refuses renames that would overwrite a file or another rename's target
- Keeps going after a failure and reports every path exactly once

🔄 Flow:
1. Paths are grouped by parent directory (parallel mode) or kept as one group
2. Each group is processed in input order by exactly one worker
3. Every path yields an Outcome: renamed, planned, skipped or failed
4. Outcomes are merged back into input order in the Report

⚡ Key Responsibilities:
- Collision safety within a batch (claimed and vacated destinations)
- Refusing to overwrite files that already exist on disk
- Bounded parallelism across directories with no shared mutable state
- Dry runs that simulate the whole batch without touching the filesystem

📝 Design Philosophy:
A group owns its claim set. Two groups never share a parent directory, so
they can never compete for a destination, and workers need no locks: each
writes only its own slot of the result table.
*/
package operation
