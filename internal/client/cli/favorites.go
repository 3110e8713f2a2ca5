package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// addFavorite interactively collects a platform, URL and the optional title
// and description, then saves the favorite via the API.
func (a *App) addFavorite(ctx context.Context) error {
	platform, err := getSimpleText(a.reader, "Enter platform (e.g. youtube, github)", os.Stdout)
	if err != nil {
		return err
	}
	url, err := getSimpleText(a.reader, "Enter URL", os.Stdout)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Enter title (optional)", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	f, err := a.client.CreateFavorite(ctx, platform, url, title, description)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Saved %s (%s)\n", f.URL, f.ID)
	return nil
}

// listFavorites prints the user's saved links, newest first.
func (a *App) listFavorites(ctx context.Context) {
	list, err := a.client.ListFavorites(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}

	if len(list) == 0 {
		fmt.Println("No favorites yet")
		return
	}
	for _, f := range list {
		line := fmt.Sprintf("[%s] %s", f.Platform, f.URL)
		if f.Title != "" {
			line += " - " + f.Title
		}
		fmt.Println(line)
	}
}
