package checker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/lifei6671/l10n"
)

// bundlePrefix is the file naming scheme of the extraction tooling:
// bundle.l10n.json holds the source-language strings, bundle.l10n.<locale>.<ext>
// the translations.
const bundlePrefix = "bundle.l10n."

// LocaleFile is one parsed bundle file. Locale is empty for the source bundle.
type LocaleFile struct {
	Path   string
	Locale string
	Bundle l10n.Bundle
}

type Result struct {
	Locales          []string
	BadLocaleTags    map[string]string              // locale -> parse error
	MissingKeys      map[string][]string            // locale -> keys absent from that locale
	ExtraKeys        map[string][]string            // locale -> keys not in the reference set
	PlaceholderDrift map[string]map[string][]string // locale -> key -> tokens only in the translation
	EmptyMessages    map[string][]string            // locale -> keys with an empty translation
	DuplicateKeys    map[string][]string            // locale -> keys defined by more than one file
	AllKeys          []string
}

// CheckBundles performs:
//  1. locale tag validation on every translation file name
//  2. key alignment against the source bundle (missing / extra)
//  3. placeholder drift between a key's source text and its translation
//  4. empty translation detection and duplicate keys across same-locale files
func CheckBundles(dir string) (*Result, error) {
	files, err := scanBundles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s* files under %s", bundlePrefix, dir)
	}

	res := &Result{
		BadLocaleTags:    make(map[string]string),
		MissingKeys:      make(map[string][]string),
		ExtraKeys:        make(map[string][]string),
		PlaceholderDrift: make(map[string]map[string][]string),
		EmptyMessages:    make(map[string][]string),
		DuplicateKeys:    make(map[string][]string),
	}

	// 参照键集：优先使用源 bundle，否则取所有语言键的并集
	refKeys := referenceKeys(files)
	res.AllKeys = sortedKeys(refKeys)

	localeKeys := make(map[string]map[string]struct{})
	localeSet := make(map[string]struct{})

	for _, file := range files {
		if file.Locale == "" {
			continue
		}
		localeSet[file.Locale] = struct{}{}

		if _, err := language.Parse(file.Locale); err != nil {
			res.BadLocaleTags[file.Locale] = err.Error()
		}

		seen := localeKeys[file.Locale]
		if seen == nil {
			seen = make(map[string]struct{})
			localeKeys[file.Locale] = seen
		}

		for key, entry := range file.Bundle {
			if _, dup := seen[key]; dup {
				res.DuplicateKeys[file.Locale] = append(res.DuplicateKeys[file.Locale], key)
			}
			seen[key] = struct{}{}

			if entry.Message == "" {
				res.EmptyMessages[file.Locale] = append(res.EmptyMessages[file.Locale], key)
			}

			if drift := placeholderDrift(key, entry.Message); len(drift) > 0 {
				if res.PlaceholderDrift[file.Locale] == nil {
					res.PlaceholderDrift[file.Locale] = make(map[string][]string)
				}
				res.PlaceholderDrift[file.Locale][key] = drift
			}
		}
	}

	for locale, keys := range localeKeys {
		for _, k := range res.AllKeys {
			if _, ok := keys[k]; !ok {
				res.MissingKeys[locale] = append(res.MissingKeys[locale], k)
			}
		}
		for k := range keys {
			if _, ok := refKeys[k]; !ok {
				res.ExtraKeys[locale] = append(res.ExtraKeys[locale], k)
			}
		}
		sort.Strings(res.MissingKeys[locale])
		sort.Strings(res.ExtraKeys[locale])
		sort.Strings(res.EmptyMessages[locale])
		sort.Strings(res.DuplicateKeys[locale])
	}

	res.Locales = sortedKeys(localeSet)
	return res, nil
}

// placeholderDrift reports placeholder tokens used by the translation that
// never appear in the lookup key. The key embeds the source message (and the
// comment after the "/"), so any token missing from it cannot be filled by
// the arguments the call site supplies.
func placeholderDrift(key, translated string) []string {
	source := make(map[string]struct{})
	for _, tok := range l10n.PlaceholderNames(key) {
		source[tok] = struct{}{}
	}

	var drift []string
	for _, tok := range l10n.PlaceholderNames(translated) {
		if _, ok := source[tok]; !ok {
			drift = append(drift, tok)
		}
	}
	return drift
}

func referenceKeys(files []LocaleFile) map[string]struct{} {
	ref := make(map[string]struct{})
	hasSource := false
	for _, file := range files {
		if file.Locale == "" {
			hasSource = true
			for k := range file.Bundle {
				ref[k] = struct{}{}
			}
		}
	}
	if hasSource {
		return ref
	}
	for _, file := range files {
		for k := range file.Bundle {
			ref[k] = struct{}{}
		}
	}
	return ref
}

func scanBundles(dir string) ([]LocaleFile, error) {
	var res []LocaleFile

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		locale, ok := parseBundleName(filepath.Base(path))
		if !ok {
			return nil
		}

		bundle, err := l10n.ReadBundleFile(path)
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}

		res = append(res, LocaleFile{Path: path, Locale: locale, Bundle: bundle})
		return nil
	})

	return res, err
}

// parseBundleName extracts the locale from a bundle file name. The source
// bundle (no locale segment) yields an empty locale.
func parseBundleName(base string) (locale string, ok bool) {
	if !strings.HasPrefix(base, bundlePrefix) {
		return "", false
	}
	rest := strings.TrimPrefix(base, bundlePrefix)

	switch rest {
	case "json", "yaml", "yml", "toml":
		return "", true
	}

	switch ext := filepath.Ext(rest); ext {
	case ".json", ".yaml", ".yml", ".toml":
		return strings.TrimSuffix(rest, ext), true
	}
	return "", false
}

func sortedKeys[M ~map[string]struct{}](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
