package web

import (
	"html/template"
	"io"
)

var shellTemplate = template.Must(template.New("shell").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style type="text/css">
  body {
    margin: 0 auto;
    display: flex;
    justify-content: center;
    align-items: center;
  }
  li.done {
    text-decoration: line-through;
  }
  ul>li {
    line-height: 4.5ex;
    padding-left: 0.5ex;
  }
  ul>li>input {
    margin-left: -0.5ex;
  }
</style>
</head>
<body>
<div id="{{.ContainerID}}">
{{.Fragment}}</div>
<script>
var samtodo = (function () {
  "use strict";
  var container = document.getElementById({{.ContainerID}});

  function fields() {
    var out = {};
    container.querySelectorAll("input[id]").forEach(function (el) {
      out[el.id] = el.value;
    });
    return out;
  }

  function present(envelope) {
    return fetch("/actions", {
      method: "POST",
      headers: {"Content-Type": "application/json"},
      body: JSON.stringify(envelope)
    }).then(function (res) {
      if (res.status === 204) {
        return;
      }
      return res.text().then(function (body) {
        if (!res.ok) {
          console.warn("samtodo:", res.status, body);
          return;
        }
        container.innerHTML = body;
      });
    });
  }

  console.log("GO !");
  return {
    addItem: function (inputField) {
      return present({action: "addItem", inputField: inputField, fields: fields()});
    },
    doneItem: function (index) {
      return present({action: "doneItem", index: index});
    },
    editItem: function (event, index) {
      return present({action: "editItem", index: index, value: event.target.value});
    },
    removeDoneItems: function () {
      return present({action: "removeDoneItems"});
    },
    toggleEditMode: function () {
      return present({action: "toggleEditMode"});
    }
  };
})();
</script>
</body>
</html>
`))

type shellData struct {
	Title       string
	ContainerID string
	Fragment    template.HTML
}

// renderShell writes the page around markup. The markup comes from the HTML
// renderer, which escapes all item text itself.
func renderShell(w io.Writer, cfg Config, markup string) error {
	return shellTemplate.Execute(w, shellData{
		Title:       cfg.Title,
		ContainerID: cfg.ContainerID,
		Fragment:    template.HTML(markup),
	})
}
