// Command colorfield-cli previews color choice fields: it resolves a field
// against a settings document and either prints the select markup or opens
// an interactive picker.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-colorfield/pkg/choices"
	"github.com/goliatone/go-colorfield/pkg/config"
	"github.com/goliatone/go-colorfield/pkg/field"
	"github.com/goliatone/go-colorfield/pkg/palette"
	"github.com/goliatone/go-colorfield/pkg/store"
	"github.com/goliatone/go-colorfield/pkg/store/sqlitestore"
)

func main() {
	settingsPath := flag.String("settings", "", "settings document (YAML/JSON); empty uses pure defaults")
	appName := flag.String("app", "", "owning application name")
	modelName := flag.String("model", "", "owning model name")
	fieldName := flag.String("field", "", "field name")
	dbPath := flag.String("db", "", "sqlite database with custom colors, registered as source \"db\"")
	selected := flag.String("selected", "", "pre-selected choice value")
	renderer := flag.String("renderer", "html", "output renderer: html or prompt")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	registries := config.Registries{
		Palettes: palette.NewRegistry(),
		Sources:  store.NewRegistry(),
	}

	var explicit []field.OptionFn
	if *dbPath != "" {
		db, err := sqlitestore.Open(*dbPath)
		if err != nil {
			log.Fatalf("open color store: %v", err)
		}
		defer db.Close()
		if err := registries.Sources.Register("db", db); err != nil {
			log.Fatalf("register color store: %v", err)
		}
		explicit = append(explicit, field.WithSource(db))
	}

	settings, err := loadSettings(*settingsPath, registries)
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}

	f, err := field.New(explicit...)
	if err != nil {
		log.Fatalf("construct field: %v", err)
	}
	if err := f.Bind(settings, *appName, *modelName, *fieldName); err != nil {
		log.Fatalf("bind field: %v", err)
	}

	switch *renderer {
	case "html":
		markup, err := f.Render(ctx, controlName(*fieldName), *selected)
		if err != nil {
			log.Fatalf("render select: %v", err)
		}
		if err := emit(*output, markup); err != nil {
			log.Fatalf("write output: %v", err)
		}
	case "prompt":
		value, err := prompt(ctx, f)
		if err != nil {
			log.Fatalf("prompt: %v", err)
		}
		fmt.Println(value)
	default:
		log.Fatalf("unknown renderer %q (want html or prompt)", *renderer)
	}
}

func loadSettings(path string, registries config.Registries) (config.Settings, error) {
	if path == "" {
		return config.Settings{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return config.ParseSettings(data, registries)
}

func prompt(ctx context.Context, f *field.Field) (string, error) {
	list, err := f.Choices(ctx)
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		return "", fmt.Errorf("no choices available")
	}

	labels := make([]string, 0, len(list))
	byLabel := make(map[string]choices.Choice, len(list))
	for _, choice := range list {
		label := fmt.Sprintf("%s (%s)", choice.Label, choice.Value)
		labels = append(labels, label)
		byLabel[label] = choice
	}

	var picked string
	question := &survey.Select{
		Message: "Pick a color:",
		Options: labels,
	}
	if err := survey.AskOne(question, &picked); err != nil {
		return "", err
	}
	return byLabel[picked].Value, nil
}

func controlName(fieldName string) string {
	if fieldName == "" {
		return "color"
	}
	return fieldName
}

func emit(path, markup string) error {
	if path == "" {
		fmt.Println(markup)
		return nil
	}
	if err := os.WriteFile(path, []byte(markup), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "select written to %s\n", path)
	return nil
}
