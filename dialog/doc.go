// Package dialog implements the host side of proxy:util/dialog: the
// prompts a person answers while a component runs in dialog mode.
//
// Every read returns WAVE text, so the guest can parse answers with the
// same codec it uses for traces. Prompts are indented two spaces per
// nesting depth.
package dialog
