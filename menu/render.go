package menu

import "fmt"

func Draw(m Menu) {
	fmt.Println(m.Title)
	for _, it := range m.Items {
		fmt.Printf("%d) %s\n", it.Option, it.Label)
	}
}
