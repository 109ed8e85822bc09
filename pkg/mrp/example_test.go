package mrp_test

import (
	"fmt"

	"github.com/walteh/rnm/pkg/mrp"
)

func ExampleNew() {
	r, err := mrp.New("g-(g:int)-a-(a:int)-al-(al:int)->artist-(a)-album-(al)-genre-(g)")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	out, ok := r.Apply("g-0001-a-0002-al-0003")
	fmt.Println(out, ok)

	_, ok = r.Apply("cover.jpg")
	fmt.Println(ok)

	// Output:
	// artist-0002-album-0003-genre-0001 true
	// false
}

func ExampleCheck() {
	expr, err := mrp.Parse("file(n:int)->(m)out.txt")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	_, err = mrp.Check(expr)
	fmt.Printf("Check error: %v\n", err)

	// Output:
	// Check error: undeclared identifier "m"; declared: n
}

func ExampleMatcher_Match() {
	r := mrp.MustNew("(show)_s(season:int)e(episode:int).mkv->(show) - S(season)E(episode).mkv")

	b, ok := r.Matcher().Match("castle_s02e007.mkv")
	fmt.Println(ok, b["show"], b["season"], b["episode"].Int)

	// Output:
	// true castle 02 7
}
