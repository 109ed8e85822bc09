package text_test

import (
	"fmt"

	"github.com/walteh/rnm/pkg/text"
)

func ExampleRegexReplacer_Apply() {
	replacer, err := text.NewRegexReplacer(`^IMG_(\d+)\.JPG$`, "photo-${1}.jpg")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	out, ok := replacer.Apply("IMG_0042.JPG")
	fmt.Println(out, ok)

	out, ok = replacer.Apply("notes.txt")
	fmt.Println(out, ok)

	// Output:
	// photo-0042.jpg true
	// notes.txt false
}
