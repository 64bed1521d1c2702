package pulse

type ClearCommand struct {
	ctx *Context
}

func NewClear(ctx *Context) *ClearCommand {
	return &ClearCommand{ctx: ctx}
}

// Clear fills the color buffer of the default framebuffer with color.
func (c *ClearCommand) Clear(color Color) {
	r, g, b, a := color.Components()

	c.ctx.ClearColor(r, g, b, a)
	c.ctx.Clear(glColorBufferBit)
}

type Releaser interface {
	Release()
}

// ReleaseGuard releases its delegate unless Keep was called. Use it to clean
// up partially constructed values on early returns.
type ReleaseGuard struct {
	delegate Releaser
}

func NewReleaseGuard(delegate Releaser) ReleaseGuard {
	return ReleaseGuard{delegate: delegate}
}

func (r *ReleaseGuard) Keep() {
	r.delegate = nil
}

func (r *ReleaseGuard) Release() {
	if r.delegate != nil {
		r.delegate.Release()
		r.delegate = nil
	}
}
