package server

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"
)

// Source is the read model the preview server serves from. html is empty
// when nothing displayable is selected; failed marks the displayed entry
// as unrenderable; version changes whenever the displayed document does.
type Source interface {
	DisplayedDoc() (html string, failed bool, version int)
}

// Preview serves the browser side of the filmstrip: a shell page whose
// sandboxed iframe swaps in the currently displayed document. The swap is
// done by the shell behind a 150 ms opacity fade so two documents are
// never visually interleaved.
type Preview struct {
	src  Source
	srv  *http.Server
	ln   net.Listener
	addr string
}

func New(src Source, bind string) *Preview {
	p := &Preview{src: src}
	mux := http.NewServeMux()
	mux.HandleFunc("/", p.handleShell)
	mux.HandleFunc("/doc", p.handleDoc)
	mux.HandleFunc("/version", p.handleVersion)
	p.srv = &http.Server{Addr: bind, Handler: mux}
	return p
}

// Start begins listening and returns the preview URL. Binding port 0
// picks a free port.
func (p *Preview) Start() (string, error) {
	ln, err := net.Listen("tcp", p.srv.Addr)
	if err != nil {
		return "", fmt.Errorf("preview server listen: %w", err)
	}
	p.ln = ln
	p.addr = ln.Addr().String()
	go func() {
		_ = p.srv.Serve(ln)
	}()
	return p.URL(), nil
}

func (p *Preview) URL() string {
	if p.addr == "" {
		return ""
	}
	return "http://" + p.addr + "/"
}

func (p *Preview) Shutdown(ctx context.Context) error {
	if p.ln == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return p.srv.Shutdown(shutdownCtx)
}

func (p *Preview) handleShell(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = shellTmpl.Execute(w, nil)
}

func (p *Preview) handleDoc(w http.ResponseWriter, _ *http.Request) {
	doc, failed, _ := p.src.DisplayedDoc()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	switch {
	case failed:
		fmt.Fprint(w, placeholderDoc)
	case doc == "":
		fmt.Fprint(w, waitingDoc)
	default:
		fmt.Fprint(w, doc)
	}
}

func (p *Preview) handleVersion(w http.ResponseWriter, _ *http.Request) {
	_, _, version := p.src.DisplayedDoc()
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(map[string]int{"version": version})
}

const placeholderDoc = `<!doctype html>
<html><head><meta charset="utf-8"><title>Preview</title></head>
<body style="display:flex;align-items:center;justify-content:center;height:100vh;font-family:system-ui,sans-serif;color:#666">
Cannot render this content
</body></html>`

const waitingDoc = `<!doctype html>
<html><head><meta charset="utf-8"><title>Preview</title></head>
<body style="display:flex;align-items:center;justify-content:center;height:100vh;font-family:system-ui,sans-serif;color:#666">
Waiting for the first component...
</body></html>`

// The iframe is restricted to same-origin + script execution with
// clipboard access; no top navigation, no elevated permissions. The shell
// polls /version and performs the fade-out, swap, fade-in cycle.
var shellTmpl = template.Must(template.New("shell").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>filmstrip preview</title>
<style>
html,body{margin:0;height:100%}
iframe{width:100%;height:100%;border:0;opacity:1;transition:opacity 150ms ease}
iframe.fading{opacity:0}
</style>
</head>
<body>
<iframe id="preview" sandbox="allow-same-origin allow-scripts" allow="clipboard-read; clipboard-write"></iframe>
<script>
(function(){
  var frame = document.getElementById("preview");
  var shown = -1;
  var swapping = false;

  function swap(version) {
    swapping = true;
    frame.classList.add("fading");
    setTimeout(function(){
      fetch("/doc").then(function(r){ return r.text(); }).then(function(doc){
        frame.srcdoc = doc;
        shown = version;
        frame.classList.remove("fading");
        swapping = false;
      }).catch(function(){
        frame.classList.remove("fading");
        swapping = false;
      });
    }, 150);
  }

  setInterval(function(){
    if (swapping) return;
    fetch("/version").then(function(r){ return r.json(); }).then(function(v){
      if (v.version !== shown) swap(v.version);
    }).catch(function(){});
  }, 250);
})();
</script>
</body>
</html>`))
