package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"pokedex-service/internal/domain/pokemon"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// render writes v in the requested format. text is used for the text format.
func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		// Round-trip through JSON so keys match the JSON field names.
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var generic any
		if err := json.Unmarshal(raw, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}

func writeSummaries(w io.Writer, items []pokemon.Pokemon) error {
	for _, p := range items {
		if _, err := fmt.Fprintf(w, "%s  %-12s %s\n", pokemon.FormatID(p.ID), pokemon.Capitalize(p.Name), strings.Join(p.Types, "/")); err != nil {
			return err
		}
	}
	return nil
}

func writeDetail(w io.Writer, d pokemon.Detail) error {
	disp := d.Display
	lines := []string{
		fmt.Sprintf("%s %s (%s)", disp.Number, disp.Name, disp.PrimaryType),
		d.Description,
		"",
		fmt.Sprintf("Height:     %s", disp.Height),
		fmt.Sprintf("Weight:     %s", disp.Weight),
		fmt.Sprintf("Habitat:    %s", d.Habitat),
		fmt.Sprintf("Egg groups: %s", strings.Join(d.EggGroups, ", ")),
		fmt.Sprintf("Abilities:  %s", strings.Join(disp.Abilities, ", ")),
		"",
	}
	for _, s := range disp.Stats {
		lines = append(lines, fmt.Sprintf("%-12s %3d", s.Label, s.Value))
	}
	lines = append(lines, fmt.Sprintf("%-12s %3d", "Total", disp.TotalStats))
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func writeEvolution(w io.Writer, seq pokemon.EvolutionSequence) error {
	if !seq.Evolves() {
		_, err := fmt.Fprintln(w, "This Pokémon does not evolve.")
		return err
	}
	parts := make([]string, 0, len(seq))
	for _, stage := range seq {
		part := pokemon.Capitalize(stage.Name)
		if stage.MinLevel != nil {
			part = fmt.Sprintf("%s (Lv. %d)", part, *stage.MinLevel)
		}
		parts = append(parts, part)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " -> "))
	return err
}
