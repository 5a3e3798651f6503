package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/KirkDiggler/npc-tracker/internal/entities"
)

func printList(w io.Writer, records []*entities.Character, activeID string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tNAME\tLEVEL\tVITALITY\tFOCUS\tWILL")
	for _, r := range records {
		marker := ""
		if r.ID == activeID {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			marker, r.ID, r.Name, r.Level,
			poolText(r.Vitality), poolText(r.Focus), poolText(r.Will))
	}
	_ = tw.Flush() // nolint:errcheck // writes to the command output
}

func poolText(p entities.ResourcePool) string {
	return fmt.Sprintf("%d/%d", p.Current, p.Max)
}

func printPool(w io.Writer, kind entities.PoolKind, p entities.ResourcePool) {
	fmt.Fprintf(w, "%-9s %s  %s %d\n", kind.Label(), poolText(p), kind.SeverityLabel(), p.Level)
}

func printSheet(w io.Writer, c *entities.Character, active bool) {
	title := fmt.Sprintf("%s (%s)", c.Name, c.ID)
	if active {
		title += " *"
	}
	fmt.Fprintln(w, title)
	fmt.Fprintf(w, "Level %d  XP %d/%d  Speed %s  Perception %d\n",
		c.Level, c.XP, c.NextLevel, c.Speed, c.Perception)

	fmt.Fprintln(w)
	for _, kind := range entities.PoolKinds {
		printPool(w, kind, c.Pool(kind))
	}
	fmt.Fprintf(w, "Defenses  Fortitude %d  Reflex %d  Tenacity %d\n",
		c.Defenses.Fortitude, c.Defenses.Reflex, c.Defenses.Tenacity)

	attrs := make([]string, 0, len(c.Attributes))
	for _, a := range c.Attributes {
		attrs = append(attrs, fmt.Sprintf("%s %d", a.Name, a.Value))
	}
	fmt.Fprintf(w, "Attributes  %s\n", strings.Join(attrs, ", "))

	if skills := c.VisibleSkills(); len(skills) > 0 {
		parts := make([]string, 0, len(skills))
		for _, s := range skills {
			parts = append(parts, fmt.Sprintf("%s %d", s.Name, s.Level))
		}
		fmt.Fprintf(w, "Skills  %s\n", strings.Join(parts, ", "))
	}

	if len(c.Attacks) > 0 {
		fmt.Fprintln(w)
		printAttacks(w, c)
	}
	if len(c.Armors) > 0 {
		fmt.Fprintln(w)
		printArmors(w, c)
	}
	if len(c.Talents) > 0 {
		fmt.Fprintln(w)
		printTalents(w, c)
	}

	var res []string
	for _, key := range entities.SortedKeys(c.Resistances) {
		r := c.Resistances[key]
		switch {
		case r.Immunity:
			res = append(res, key+" immune")
		case r.Vulnerable && r.Value > 0:
			res = append(res, fmt.Sprintf("%s %d vulnerable", key, r.Value))
		case r.Vulnerable:
			res = append(res, key+" vulnerable")
		case r.Value > 0:
			res = append(res, fmt.Sprintf("%s %d", key, r.Value))
		}
	}
	if len(res) > 0 {
		fmt.Fprintf(w, "Resistances  %s\n", strings.Join(res, ", "))
	}

	var conds []string
	for _, key := range entities.SortedKeys(c.Conditions) {
		if cond := c.Conditions[key]; cond.Active {
			conds = append(conds, fmt.Sprintf("%s %d", key, cond.Level))
		}
	}
	if len(conds) > 0 {
		fmt.Fprintf(w, "Conditions  %s\n", strings.Join(conds, ", "))
	}
}

func printSkills(w io.Writer, c *entities.Character) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tSKILL\tLEVEL\tVISIBLE")
	for _, key := range entities.SortedKeys(c.SkillCategories) {
		for _, s := range c.SkillCategories[key].Skills {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%t\n", key, s.Name, s.Level, s.Visible)
		}
	}
	_ = tw.Flush() // nolint:errcheck // writes to the command output
}

func printAttacks(w io.Writer, c *entities.Character) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ATTACK\tID\tDAMAGE\tWEAR\tTYPE")
	for _, a := range c.Attacks {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", a.Name, a.ID, a.EffectiveDamage(), a.Wear, a.DamageType)
	}
	_ = tw.Flush() // nolint:errcheck // writes to the command output
}

func printArmors(w io.Writer, c *entities.Character) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ARMOR\tID\tPROTECTION\tTYPE")
	for _, a := range c.Armors {
		fmt.Fprintf(tw, "%s\t%s\t%d/%d\t%s\n", a.Name, a.ID, a.Current, a.Max, a.Type)
	}
	_ = tw.Flush() // nolint:errcheck // writes to the command output
}

func printTalents(w io.Writer, c *entities.Character) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TALENT\tID\tCOST\tPOTENCIALIZACOES")
	for _, t := range c.Talents {
		pots := make([]string, 0, len(t.Potencializacoes))
		for i, p := range t.Potencializacoes {
			pots = append(pots, fmt.Sprintf("%d:%s +%d %s", i, p.Name, p.Value, p.Resource.Label()))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Name, t.ID, costText(t.Costs), strings.Join(pots, "; "))
	}
	_ = tw.Flush() // nolint:errcheck // writes to the command output
}

func costText(c entities.Costs) string {
	var parts []string
	for _, kind := range entities.PoolKinds {
		if v := c.Get(kind); v > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", v, kind.Label()))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}
