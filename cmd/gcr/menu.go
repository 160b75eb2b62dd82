package main

import "fmt"

func runMenu(a *app) error {
	fmt.Fprintln(a.out, "Welcome to Google Chat Recap!")
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "1. See most messaged people (DMs only)")
	fmt.Fprintln(a.out, "2. See activity in a specific group chat/space")

	choice, err := a.ask("\nEnter 1 or 2: ")
	if err != nil {
		return err
	}
	switch choice {
	case "1":
		return runContacts(a, "", false)
	case "2":
		return runGroup(a, "", "")
	default:
		fmt.Fprintln(a.out, "Invalid selection. Exiting.")
		return nil
	}
}
