package update

const helpMarkdown = `# Todo List

Type in the input and press **enter** to add an item. **tab** moves between
the input and the list.

| key | list mode | edit mode |
|---|---|---|
| enter | mark done / undone | edit the item |
| x | remove done items | remove done items |
| e | switch to edit mode | switch to todo mode |

Commands after **:** are ` + "`add <text>`, `done <n>`, `edit <n> <text>`, `clear` and `mode`" + `.
Items are numbered from 0.
`
