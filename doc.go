// Package confset reads and edits flat, shell style configuration files as
// found in /etc/default and /etc/sysconfig, e.g.
//
//	# Seconds to wait before booting the default entry
//	GRUB_TIMEOUT=5
//
//	GRUB_CMDLINE_LINUX="quiet splash"
//
// Every file is a Document. Its settings are addressed by qualified keys of the
// form <document name>.<key>, e.g. grub.GRUB_TIMEOUT. Comment lines directly
// preceding a setting are kept as its help text. A blank line ends such a
// comment block.
//
// This is not a general purpose config language parser. There are no sections,
// types, includes or variable expansion. Only the first '=' on a line separates
// key and value, everything after it is the value.
//
// # Usage
//
// Documents are found by name with a Locator. By default it searches
// /etc/default and then /etc/sysconfig, the first match wins:
//
//	doc, err := confset.Load("grub", confset.NewLocator())
//	if err != nil { ... }
//	timeout, ok := doc.Get("grub.GRUB_TIMEOUT")
//
// A missing file is not an error, it yields an empty document.
//
// ## Listing settings
//
//	_ = doc.Print(os.Stdout, confset.PrintOptions{Info: true})
//
// To list the settings of all files use LoadAll and PrintAll. PrintAll aligns
// the help column across all documents.
//
// ## Writing settings
//
//	if err := doc.Set("GRUB_TIMEOUT", "10", "Seconds to wait"); err != nil { ... }
//
// Set takes a backup copy (<path>.confset.<YYYYMMDDHHMMSS>) before it rewrites
// the file. Existing lines are updated in place, new keys are appended together
// with their help text. Set does not update the loaded document, call Load
// again to see the change.
//
// # Customization
//
// The confset command reads its own options from
// $XDG_CONFIG_HOME/confset/config.toml (see LoadOptions). The CONFSET_PATH
// environment variable overrides the search path.
//
// # Known limitations
//
// * There is no locking. Concurrent writers race and the last one wins.
// * Help text is only written for new keys, existing comments are never changed.
package confset
