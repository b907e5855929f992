// Abox applies semibox operations to the acme (or edwood) window named
// by $winid, operating on the selection. Bind it to a tag word inside
// the editor:
//
//	abox [-d] [box|unbox|kill|title|fill|where] [arg]
//
// box decorates the selection; title with an argument retitles the box
// at the selection and without one prints its title; the remaining
// operations match the semibox document commands. After an edit the
// selection is moved to the box (or to where it was removed).
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"9fans.net/go/acme"

	"github.com/rjkroege/semibox/box"
	"github.com/rjkroege/semibox/config"
	"github.com/rjkroege/semibox/content"
	"github.com/rjkroege/semibox/edit"
)

var debug = flag.Bool("d", false, "set for verbose debugging")

func main() {
	flag.Parse()
	if !*debug {
		log.SetOutput(io.Discard)
	}

	op := "box"
	if flag.NArg() > 0 {
		op = flag.Arg(0)
	}

	id, err := strconv.Atoi(os.Getenv("winid"))
	if err != nil {
		log.Fatalf("abox: $winid is not set; run me from inside acme")
	}
	w, err := acme.Open(id, nil)
	if err != nil {
		log.Fatalf("abox: acme.Open %d: %v", id, err)
	}
	defer w.CloseFiles()

	// The selection, in runes, then the whole body.
	if err := w.Ctl("addr=dot"); err != nil {
		log.Fatalf("abox: addr=dot: %v", err)
	}
	q0, q1, err := w.ReadAddr()
	if err != nil {
		log.Fatalf("abox: read addr: %v", err)
	}
	body, err := w.ReadAll("body")
	if err != nil {
		log.Fatalf("abox: read body: %v", err)
	}
	log.Printf("window %d dot %d,%d body %d bytes", id, q0, q1, len(body))

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("abox: %v", err)
	}
	s := cfg.Style()
	t := edit.NewTextBuffer(string(body))

	show := q0
	edited := true
	switch op {
	case "box":
		var b box.Box
		b, err = s.Decorate(t, q0, q1)
		if err == nil {
			show = b.Q0
		}
	case "unbox":
		err = s.Unbox(t, q0)
	case "kill":
		var text string
		text, err = s.Kill(t, q0)
		if err == nil {
			err = content.ToClipboard(text)
		}
	case "title":
		if flag.NArg() > 1 {
			err = s.SetTitleAt(t, q0, flag.Arg(1))
		} else {
			var title string
			title, err = s.TitleAt(t, q0)
			if err == nil {
				fmt.Println(title)
			}
			edited = false
		}
	case "fill":
		err = s.Refill(t, q0, cfg.FillWidth)
	case "where":
		var b box.Box
		b, err = s.LocateOrErr(t, q0)
		if err == nil {
			show = b.Q0
			if err = w.Addr("#%d,#%d", b.Q0, b.Q1); err == nil {
				err = w.Ctl("dot=addr\nshow\n")
			}
		}
		edited = false
	default:
		log.Fatalf("abox: unknown operation %q", op)
	}
	if err != nil {
		log.Fatalf("abox: %s: %v", op, err)
	}
	if !edited {
		return
	}

	if err := w.Addr(","); err != nil {
		log.Fatalf("abox: addr: %v", err)
	}
	if _, err := w.Write("data", []byte(t.String())); err != nil {
		log.Fatalf("abox: write body: %v", err)
	}
	if err := w.Addr("#%d", show); err == nil {
		w.Ctl("dot=addr\nshow\n")
	}
}
