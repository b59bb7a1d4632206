// Package ui is the terminal front end of the grid editor, built on Bubble Tea.
//
//   - GridView renders the table: static cells as text, the editing cell as a
//     live editor (text box or dropdown), and routes keys and mouse clicks to
//     the grid focus controller.
//   - KeybindRegistry / KeyHandler dispatch browse-mode commands, including
//     SPC-prefixed leader sequences.
//   - AppModel ties both together and is run through AsTeaModel.
package ui
