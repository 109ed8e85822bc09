// Package config loads rename rules from a configuration file.
//
//	            +-------------+
//	            |   Config    |
//	            |  (Rules)    |
//	            +------+------+
//	                   |
//	      +------------+------------+
//	      |            |            |
//	+-----+----+ +-----+----+ +-----+----+
//	|   YAML   | |   HCL    | |   JSON   |
//	|  Parser  | |  Parser  | |  Parser  |
//	+----------+ +----------+ +----------+
//
// 🎯 Purpose:
// - Names reusable rename rules (expression plus the files it applies to)
// - Carries batch defaults (parallel, workers, dry run, strict no-match)
// - Compiles every expression before any file is touched
//
// 🔄 Flow:
// 1. FindFile looks for .rnm.yaml, .rnm.yml, .rnm.hcl or .rnm.json
// 2. The registered parser for the extension decodes the file
// 3. Validate checks names and compiles each expression
// 4. Select picks the rules a command should run
//
// 📝 Example (YAML):
//
//	parallel: true
//	rules:
//	  - name: music
//	    expression: "g-(g:int)-a-(a:int)-al-(al:int)->artist-(a)-album-(al)-genre-(g)"
//	    globs: ["music/**/*.mp3"]
//	    ignore: ["music/archive/**"]
//
// 📝 Example (HCL):
//
//	workers = 4
//	rule "photos" {
//	  expression = "IMG_(n:int).JPG->photo-(n).jpg"
//	  globs      = ["${env.HOME}/Pictures/*.JPG"]
//	}
package config
