package edit

import (
	"errors"
)

type elogType byte

const (
	elogNull elogType = iota
	elogDelete
	elogInsert
	elogReplace
)

const wsequence = "warning: changes out of sequence"

// Elog is a log of changes to be made to a Texter. Staging a whole
// transform here and applying it in one call serves two purposes:
// 1) offsets recorded in the log all address the unmodified document,
// so a multi-line change (a rectangular prefix, say) is computed in one
// coordinate system, and 2) adjacent changes are merged, so the applied
// edit is as small as possible.
//
// There is a significant assumption that the log has increasing q0s.
// The log is then played back backwards to apply the changes to the
// text. Out-of-order edits are warned about.
type Elog struct {
	log    []elogOperation
	warned bool
}

type elogOperation struct {
	t  elogType
	q0 int // location of change
	nd int // number of deleted runes
	r  []rune
}

func MakeElog() Elog {
	return Elog{log: []elogOperation{
		{elogNull, 0, 0, []rune{}}, // Sentinel
	}}
}

func (e *Elog) Reset() {
	e.log = e.log[0:1] // Just the sentinel
	e.log[0].t = elogNull
	e.warned = false
}

// extend makes sure the log is large enough for one more operation.
func (e *Elog) extend() {
	if cap(e.log) == len(e.log) {
		t := make([]elogOperation, len(e.log), (cap(e.log)+1)*2)
		copy(t, e.log)
		e.log = t
	}
	e.log = e.log[:len(e.log)+1]
}

func (e *Elog) last() *elogOperation       { return &e.log[len(e.log)-1] }
func (e *Elog) secondlast() *elogOperation { return &e.log[len(e.log)-2] }

func (eo *elogOperation) setr(r []rune) {
	if eo.r == nil || cap(eo.r) < len(r) {
		eo.r = make([]rune, len(r))
	} else {
		eo.r = eo.r[0:len(r)]
	}
	copy(eo.r, r)
}

func (e *Elog) Empty() bool {
	return len(e.log) == 1
}

func (e *Elog) Insert(q0 int, r []rune) error {
	var err error
	if len(r) == 0 {
		return err
	}

	// Insertions at the same point tend to come together; merge them
	// onto the last operation.
	eo := e.last()
	if q0 < eo.q0 && !e.warned {
		e.warned = true
		err = errors.New(wsequence)
	}
	if eo.t == elogInsert && q0 == eo.q0 {
		eo.r = append(eo.r, r...)
		return err
	}

	e.extend()
	eo = e.last()
	eo.t = elogInsert
	eo.q0 = q0
	eo.nd = 0
	eo.setr(r)
	if eo.q0 < e.secondlast().q0 {
		e.warned = true
		err = errors.New(wsequence)
	}
	return err
}

func (e *Elog) Delete(q0, q1 int) error {
	var err error
	if q0 == q1 {
		return err
	}

	// Try to merge deletes
	eo := e.last()
	if q0 < eo.q0+eo.nd && !e.warned {
		e.warned = true
		err = errors.New(wsequence)
	}
	if eo.t == elogDelete && eo.q0+eo.nd == q0 {
		eo.nd += q1 - q0
		return err
	}

	e.extend()
	eo = e.last()
	eo.t = elogDelete
	eo.q0 = q0
	eo.nd = q1 - q0
	if eo.q0 < e.secondlast().q0 {
		e.warned = true
		err = errors.New(wsequence)
	}
	return err
}

func (e *Elog) Replace(q0, q1 int, r []rune) error {
	var err error
	if q0 == q1 && len(r) == 0 {
		return err
	}

	eo := e.last()
	if q0 < eo.q0 && !e.warned {
		e.warned = true
		err = errors.New(wsequence)
	}

	e.extend()
	eo = e.last()
	eo.t = elogReplace
	eo.q0 = q0
	eo.nd = q1 - q0
	eo.setr(r)
	if eo.q0 < e.secondlast().q0 {
		e.warned = true
		err = errors.New(wsequence)
	}
	return err
}

// Apply plays back the log, from back to front, onto the given text.
// Applying back-to-front avoids disturbing the text ahead of the
// current application point. The log is reset afterwards.
func (e *Elog) Apply(t Texter) {
	for i := len(e.log) - 1; i >= 1; i-- {
		eo := e.log[i]
		switch eo.t {
		case elogReplace:
			tq0, tq1 := t.Constrain(eo.q0, eo.q0+eo.nd)
			t.Delete(tq0, tq1)
			t.Insert(tq0, eo.r)
		case elogInsert:
			tq0, _ := t.Constrain(eo.q0, eo.q0)
			t.Insert(tq0, eo.r)
		case elogDelete:
			tq0, tq1 := t.Constrain(eo.q0, eo.q0+eo.nd)
			t.Delete(tq0, tq1)
		}
	}
	e.Reset()
}
