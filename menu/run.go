package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Run drives the read-execute loop over an explicit menu stack. "Back" pops
// the top menu; there is no recursive re-entry into parent loops, so the
// stack depth is bounded by the menu tree depth.
func Run(ctx context.Context, root Menu, d *Deps) {
	stack := []Menu{root}
	for {
		top := stack[len(stack)-1]
		Draw(top)

		choice, err := readChoice()
		fmt.Println()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			fmt.Println("Invalid input.")
			fmt.Println()
			continue
		}

		item, ok := top.Find(choice)
		if !ok {
			fmt.Println("Invalid option.")
			fmt.Println()
			continue
		}

		switch {
		case item.Key == "exit":
			fmt.Println("Bye!")
			return
		case item.Key == "back":
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
			continue
		}

		if item.Key != "" {
			cmd := WithTiming(d.Log, Command{
				Key:  item.Key,
				Name: item.Label,
				Run: func(ctx context.Context) error {
					return Execute(ctx, item.Key, d)
				},
			})
			if err := cmd.Run(ctx); err != nil {
				fmt.Println("Error:", err)
			}
		}

		if item.Sub != nil {
			stack = append(stack, *item.Sub)
			continue
		}

		fmt.Println()
		if item.PopAfter && len(stack) > 1 {
			stack = stack[:len(stack)-1]
		}
	}
}
