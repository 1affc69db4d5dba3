package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lifei6671/l10n/cmd/l10nlint/checker"
)

func main() {
	dir := flag.String("d", ".", "directory of bundle.l10n.* files")
	failOnError := flag.Bool("fail", false, "exit with code 1 if any issue found")
	flag.Parse()

	res, err := checker.CheckBundles(*dir)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	printResult(res)

	if *failOnError && hasIssues(res) {
		os.Exit(1)
	}
}

func printResult(res *checker.Result) {
	fmt.Println("=== L10N CHECK RESULT ===")
	fmt.Println("Locales:", res.Locales)
	fmt.Println("Total keys:", len(res.AllKeys))

	for _, locale := range res.Locales {
		fmt.Printf("\n--- [%s] ---\n", locale)

		if msg, bad := res.BadLocaleTags[locale]; bad {
			fmt.Println("Locale tag: INVALID -", msg)
		} else {
			fmt.Println("Locale tag: OK")
		}

		printKeyList("Missing keys", res.MissingKeys[locale])
		printKeyList("Extra keys", res.ExtraKeys[locale])
		printKeyList("Empty messages", res.EmptyMessages[locale])
		printKeyList("Duplicate keys", res.DuplicateKeys[locale])

		if drift := res.PlaceholderDrift[locale]; len(drift) > 0 {
			fmt.Println("Placeholder drift:")
			for key, tokens := range drift {
				fmt.Printf("  - %s: %v\n", key, tokens)
			}
		} else {
			fmt.Println("Placeholder drift: None")
		}
	}
}

func printKeyList(title string, keys []string) {
	if len(keys) == 0 {
		fmt.Println(title + ": None")
		return
	}
	fmt.Println(title + ":")
	for _, k := range keys {
		fmt.Println("  -", k)
	}
}

func hasIssues(res *checker.Result) bool {
	if len(res.BadLocaleTags) > 0 {
		return true
	}
	for _, arr := range res.MissingKeys {
		if len(arr) > 0 {
			return true
		}
	}
	for _, arr := range res.ExtraKeys {
		if len(arr) > 0 {
			return true
		}
	}
	for _, arr := range res.EmptyMessages {
		if len(arr) > 0 {
			return true
		}
	}
	for _, arr := range res.DuplicateKeys {
		if len(arr) > 0 {
			return true
		}
	}
	for _, drift := range res.PlaceholderDrift {
		if len(drift) > 0 {
			return true
		}
	}
	return false
}
