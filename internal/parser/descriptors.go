package parser

import (
	"mtm/internal/commands"
)

// DefaultDescriptors returns the built-in command set.
func DefaultDescriptors() []Descriptor {
	return []Descriptor{
		// Allowed while locked.
		{Word: commands.ThemeWord, Alias: commands.ThemeAlias, Tier: TierUnrestricted, Usage: commands.ThemeUsage, Parse: parseTheme},
		{Word: commands.FindWord, Alias: commands.FindAlias, Tier: TierUnrestricted, Usage: commands.FindUsage, Parse: parseFind},
		{Word: commands.ListWord, Alias: commands.ListAlias, Tier: TierUnrestricted, Usage: commands.ListUsage,
			Parse: noArgs(func() commands.Command { return commands.ListCommand{} })},
		{Word: commands.KeyWord, Alias: commands.KeyAlias, Tier: TierUnrestricted, Usage: commands.KeyUsage, Parse: parseKey},
		{Word: commands.ViewWord, Alias: commands.ViewAlias, Tier: TierUnrestricted, Usage: commands.ViewUsage,
			Parse: singleGroup(commands.ViewUsage, func(g string) commands.Command { return commands.ViewCommand{Group: g} })},
		{Word: commands.ExitWord, Tier: TierUnrestricted, Usage: commands.ExitUsage,
			Parse: noArgs(func() commands.Command { return commands.ExitCommand{} })},
		{Word: commands.HelpWord, Tier: TierUnrestricted, Usage: commands.HelpUsage,
			Parse: noArgs(func() commands.Command { return commands.HelpCommand{} })},
		{Word: commands.SortWord, Alias: commands.SortAlias, Tier: TierUnrestricted, Usage: commands.SortUsage, Parse: parseSort},

		// Only allowed while unlocked.
		{Word: commands.AddWord, Alias: commands.AddAlias, Tier: TierRestricted, Usage: commands.AddUsage, Parse: parseAdd},
		{Word: commands.EditWord, Alias: commands.EditAlias, Tier: TierRestricted, Usage: commands.EditUsage, Parse: parseEdit},
		{Word: commands.SelectWord, Alias: commands.SelectAlias, Tier: TierRestricted, Usage: commands.SelectUsage,
			Parse: indexOnly(commands.SelectUsage, func(i int) commands.Command { return commands.SelectCommand{Index: i} })},
		{Word: commands.DeleteWord, Alias: commands.DeleteAlias, Tier: TierRestricted, Usage: commands.DeleteUsage,
			Parse: indexOnly(commands.DeleteUsage, func(i int) commands.Command { return commands.DeleteCommand{Index: i} })},
		{Word: commands.ClearWord, Alias: commands.ClearAlias, Tier: TierRestricted, Usage: commands.ClearUsage,
			Parse: noArgs(func() commands.Command { return commands.ClearCommand{} })},
		{Word: commands.RemarkWord, Alias: commands.RemarkAlias, Tier: TierRestricted, Usage: commands.RemarkUsage, Parse: parseRemark},
		{Word: commands.HistoryWord, Alias: commands.HistoryAlias, Tier: TierRestricted, Usage: commands.HistoryUsage,
			Parse: noArgs(func() commands.Command { return commands.HistoryCommand{} })},
		{Word: commands.CreateWord, Alias: commands.CreateAlias, Tier: TierRestricted, Usage: commands.CreateUsage,
			Parse: singleGroup(commands.CreateUsage, func(g string) commands.Command { return commands.CreateCommand{Group: g} })},
		{Word: commands.RemoveWord, Alias: commands.RemoveAlias, Tier: TierRestricted, Usage: commands.RemoveUsage,
			Parse: singleGroup(commands.RemoveUsage, func(g string) commands.Command { return commands.RemoveCommand{Group: g} })},
		{Word: commands.AssignWord, Alias: commands.AssignAlias, Tier: TierRestricted, Usage: commands.AssignUsage, Parse: parseAssign},
		{Word: commands.RenameWord, Alias: commands.RenameAlias, Tier: TierRestricted, Usage: commands.RenameUsage, Parse: parseRename},
		{Word: commands.UndoWord, Alias: commands.UndoAlias, Tier: TierRestricted, Usage: commands.UndoUsage,
			Parse: noArgs(func() commands.Command { return commands.UndoCommand{} })},
		{Word: commands.RedoWord, Alias: commands.RedoAlias, Tier: TierRestricted, Usage: commands.RedoUsage,
			Parse: noArgs(func() commands.Command { return commands.RedoCommand{} })},
		{Word: commands.SetWord, Alias: commands.SetAlias, Tier: TierRestricted, Usage: commands.SetUsage, Parse: parseSet},
		{Word: commands.PrivacyWord, Alias: commands.PrivacyAlias, Tier: TierRestricted, Usage: commands.PrivacyUsage,
			Parse: indexOnly(commands.PrivacyUsage, func(i int) commands.Command { return commands.PrivacyCommand{Index: i} })},
	}
}

var defaultTable = MustTable(DefaultDescriptors()...)

// DefaultTable returns the shared built-in command table.
func DefaultTable() *Table {
	return defaultTable
}
