package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// addTab interactively collects a key and label and creates a custom tab.
// The server enforces the per-user tab cap and key uniqueness; its error
// message is shown to the user as-is.
func (a *App) addTab(ctx context.Context) error {
	key, err := getSimpleText(a.reader, "Enter tab key (e.g. news)", os.Stdout)
	if err != nil {
		return err
	}
	label, err := getSimpleText(a.reader, "Enter tab label", os.Stdout)
	if err != nil {
		return err
	}

	t, err := a.client.CreateTab(ctx, key, label)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Created tab %s (%s)\n", t.Label, t.ID)
	return nil
}

// listTabs prints the user's custom tabs in creation order.
func (a *App) listTabs(ctx context.Context) {
	list, err := a.client.ListTabs(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	if len(list) == 0 {
		fmt.Println("No custom tabs yet")
		return
	}
	for _, t := range list {
		fmt.Printf("%s: %s\n", t.Key, t.Label)
	}
}
