// Package tui is the interactive front end for dngconv.
//
// It renders the current selection and conversion options, opens keyboard
// driven file pickers for the input files and the output folder, and triggers
// conversion runs through a workflow.Manager. The Manager pushes selection
// summaries and the convert-enabled flag into the model's panel; the model
// never keeps its own copy of the selection.
package tui
