package edit

// view restricts a Texter to [org, end) of an underlying buffer.
// Offsets seen through the view are relative to org.
type view struct {
	t   Texter
	org int
	end int
}

// Narrow runs body against a Texter restricted to [q0, q1) of t.
// Edits made through the view move its end so the restriction stays
// consistent while body runs. The restriction exists only for the
// dynamic extent of body: on return, normal or error, callers are back
// to absolute addressing on t. This replaces manual save/restore pairs
// around multi-step transforms.
func Narrow(t Texter, q0, q1 int, body func(v Texter) error) error {
	q0, q1 = t.Constrain(q0, q1)
	return body(&view{t: t, org: q0, end: q1})
}

func (v *view) Constrain(q0, q1 int) (p0, p1 int) {
	p0 = min(max(q0, 0), v.Nc())
	p1 = min(max(q1, 0), v.Nc())
	return p0, p1
}

func (v *view) Nc() int { return v.end - v.org }

func (v *view) Delete(q0, q1 int) {
	if q0 > v.Nc() || q1 > v.Nc() {
		panic("internal error: view.Delete: out-of-range delete")
	}
	v.t.Delete(v.org+q0, v.org+q1)
	v.end -= q1 - q0
}

func (v *view) Insert(q0 int, r []rune) {
	if q0 > v.Nc() {
		panic("internal error: view.Insert: out-of-range insertion")
	}
	v.t.Insert(v.org+q0, r)
	v.end += len(r)
}

func (v *view) ReadB(q int, r []rune) (n int, err error) {
	if q+len(r) > v.Nc() {
		r = r[:v.Nc()-q]
	}
	return v.t.ReadB(v.org+q, r)
}

func (v *view) ReadC(q int) rune { return v.t.ReadC(v.org + q) }

func (v *view) View(q0, q1 int) []rune {
	if q1 > v.Nc() {
		q1 = v.Nc()
	}
	return v.t.View(v.org+q0, v.org+q1)
}
