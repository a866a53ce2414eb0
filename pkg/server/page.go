package server

import (
	"bytes"
	"html/template"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<div id="app">{{.Body}}</div>
<script>
(function () {
  var app = document.getElementById("app");
  var seq = 0;
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws");

  ws.onmessage = function (msg) {
    var f = JSON.parse(msg.data);
    if (f.type === "init" || (f.type === "patch" && f.seq > seq)) {
      seq = f.seq || 0;
      app.innerHTML = f.html;
    }
  };

  function send(type, e) {
    var el = e.target.closest("[{{.Attr}}]");
    if (!el || ws.readyState !== WebSocket.OPEN) return;
    ws.send(JSON.stringify({
      type: "event",
      event: type,
      target: el.getAttribute("{{.Attr}}"),
      value: e.target.value === undefined ? "" : String(e.target.value)
    }));
  }

  ["click", "input", "change"].forEach(function (type) {
    app.addEventListener(type, function (e) { send(type, e); });
  });
})();
</script>
</body>
</html>
`))

// page renders the preview page. body is trusted markup produced by memdom.
func page(title, body string) []byte {
	var buf bytes.Buffer
	pageTemplate.Execute(&buf, struct {
		Title string
		Body  template.HTML
		Attr  string
	}{title, template.HTML(body), IDAttribute})
	return buf.Bytes()
}
