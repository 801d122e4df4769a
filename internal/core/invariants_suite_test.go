package core_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/axwm/axwm/internal/accessibility"
	"github.com/axwm/axwm/internal/core"
	"github.com/axwm/axwm/internal/geometry"
	"github.com/axwm/axwm/internal/layout"
)

// TestInvariants is the ginkgo entry point. It runs alongside the
// testify-based tests in this package as a second, independent expression
// of the same topology invariants — neither suite depends on the other.
func TestInvariants(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "core topology invariants")
}

var _ = Describe("window ownership", func() {
	// Invariant 1: every window belongs to exactly one of
	// {tiled container, floating, monocle, maximized} of exactly one
	// workspace.
	It("counts each window exactly once across a workspace's views", func() {
		wm := core.New(accessibility.Noop{}, accessibility.Noop{}, nil, nil)
		mon := core.NewMonitor("main", geometry.NewRect(0, 0, 1000, 1000))
		mon.Workspaces.AppendBack(core.NewWorkspace("one"))
		wm.Monitors.AppendBack(mon)

		wm.AddWindowToFocusedWorkspace(&core.Window{ID: "w1"})
		wm.AddWindowToFocusedWorkspace(&core.Window{ID: "w2"})

		ws, ok := mon.Workspaces.Focused()
		Expect(ok).To(BeTrue())

		seen := map[string]int{}
		for _, c := range ws.Containers.Elements() {
			for _, w := range c.Windows.Elements() {
				seen[w.ID]++
			}
		}
		for _, w := range ws.Floating {
			seen[w.ID]++
		}
		if ws.Monocle != nil {
			for _, w := range ws.Monocle.Windows.Elements() {
				seen[w.ID]++
			}
		}
		if ws.Maximized != nil {
			seen[ws.Maximized.ID]++
		}

		Expect(seen).To(Equal(map[string]int{"w1": 1, "w2": 1}))
	})
})

var _ = Describe("focused container index", func() {
	// Invariant 2: every non-empty workspace has a focused container
	// index within [0, containers.len()).
	It("stays in range as containers are added and removed", func() {
		wm := core.New(accessibility.Noop{}, accessibility.Noop{}, nil, nil)
		mon := core.NewMonitor("main", geometry.NewRect(0, 0, 1000, 1000))
		mon.Workspaces.AppendBack(core.NewWorkspace("one"))
		wm.Monitors.AppendBack(mon)
		ws, _ := mon.Workspaces.Focused()

		for i, id := range []string{"w1", "w2", "w3"} {
			wm.AddWindowToFocusedWorkspace(&core.Window{ID: id})
			idx, ok := ws.Containers.FocusedIndex()
			Expect(ok).To(BeTrue())
			Expect(idx).To(BeNumerically(">=", 0))
			Expect(idx).To(BeNumerically("<", ws.Containers.Len()))
			_ = i
		}

		wm.ReapWindow("w2")
		if ws.Containers.Len() > 0 {
			idx, ok := ws.Containers.FocusedIndex()
			Expect(ok).To(BeTrue())
			Expect(idx).To(BeNumerically(">=", 0))
			Expect(idx).To(BeNumerically("<", ws.Containers.Len()))
		}
	})
})

var _ = Describe("empty containers", func() {
	// Invariant 3: empty containers do not persist across a mutation
	// boundary.
	It("is garbage collected the moment its last window is reaped", func() {
		wm := core.New(accessibility.Noop{}, accessibility.Noop{}, nil, nil)
		mon := core.NewMonitor("main", geometry.NewRect(0, 0, 1000, 1000))
		mon.Workspaces.AppendBack(core.NewWorkspace("one"))
		wm.Monitors.AppendBack(mon)
		ws, _ := mon.Workspaces.Focused()

		wm.AddWindowToFocusedWorkspace(&core.Window{ID: "w1"})
		Expect(ws.Containers.Len()).To(Equal(1))

		wm.ReapWindow("w1")
		Expect(ws.Containers.Len()).To(Equal(0))

		for _, c := range ws.Containers.Elements() {
			Expect(c.Windows.Len()).To(BeNumerically(">", 0))
		}
	})
})

var _ = Describe("focused monitor index", func() {
	// Invariant 4: the focused monitor index is valid whenever monitors
	// is non-empty.
	It("remains valid with one and with several monitors", func() {
		wm := core.New(accessibility.Noop{}, accessibility.Noop{}, nil, nil)
		Expect(wm.Monitors.IsEmpty()).To(BeTrue())
		_, ok := wm.Monitors.FocusedIndex()
		Expect(ok).To(BeFalse())

		for i := 0; i < 3; i++ {
			mon := core.NewMonitor(string(rune('a'+i)), geometry.NewRect(0, 0, 1000, 1000))
			mon.Workspaces.AppendBack(core.NewWorkspace("one"))
			wm.Monitors.AppendBack(mon)

			idx, ok := wm.Monitors.FocusedIndex()
			Expect(ok).To(BeTrue())
			Expect(idx).To(BeNumerically(">=", 0))
			Expect(idx).To(BeNumerically("<", wm.Monitors.Len()))
		}
	})
})

var _ = Describe("layout coverage", func() {
	// Invariant 5: for all layouts with count >= 1, layout(work_area,
	// count, ...) returns exactly count rectangles whose union is
	// contained in work_area. Scrolling places every tile except the
	// focused one off-screen, so for Scrolling only the focused tile
	// (index 0 here) is checked for containment.
	kinds := []layout.Kind{
		layout.BSP, layout.Columns, layout.Rows, layout.VerticalStack,
		layout.RightMainVerticalStack, layout.HorizontalStack,
		layout.UltrawideVerticalStack, layout.Grid, layout.Scrolling,
	}
	area := geometry.NewRect(0, 0, 1920, 1080)

	for _, kind := range kinds {
		kind := kind
		It("covers the work area with exactly count rects for "+kind.String(), func() {
			for count := 1; count <= 9; count++ {
				rects := layout.Arrange(kind, area, count, layout.Options{Focused: 0})
				Expect(rects).To(HaveLen(count))
				for i, r := range rects {
					if kind == layout.Scrolling && i != 0 {
						continue
					}
					Expect(area.Contains(r)).To(BeTrue(), "kind=%s count=%d rect=%+v not contained in %+v", kind, count, r, area)
				}
			}
		})
	}
})

var _ = Describe("direction navigation", func() {
	// Invariant 6: is_valid_direction(op, idx, count) implies
	// index_in_direction(op, idx, count) returns Some, and the returned
	// index is in [0, count).
	kinds := []layout.Kind{
		layout.BSP, layout.Columns, layout.Rows, layout.VerticalStack,
		layout.RightMainVerticalStack, layout.HorizontalStack,
		layout.UltrawideVerticalStack, layout.Grid, layout.Scrolling,
	}
	directions := []layout.Direction{layout.Left, layout.Right, layout.Up, layout.Down}

	for _, kind := range kinds {
		kind := kind
		It("agrees between IsValidDirection and IndexInDirection for "+kind.String(), func() {
			for count := 1; count <= 8; count++ {
				for idx := 0; idx < count; idx++ {
					for _, d := range directions {
						valid := layout.IsValidDirection(kind, idx, count, d)
						target, ok := layout.IndexInDirection(kind, idx, count, d)
						Expect(ok).To(Equal(valid))
						if ok {
							Expect(target).To(BeNumerically(">=", 0))
							Expect(target).To(BeNumerically("<", count))
						}
					}
				}
			}
		})
	}
})

var _ = Describe("grid arrangement", func() {
	// Invariant 7: for every count and every idx < count, the grid layout
	// produces a valid, in-bounds rect for that index — there is no
	// index position the grid algorithm leaves undefined.
	It("produces an in-bounds rect for every index at every count", func() {
		area := geometry.NewRect(0, 0, 1920, 1080)
		for count := 1; count <= 16; count++ {
			rects := layout.Arrange(layout.Grid, area, count, layout.Options{})
			Expect(rects).To(HaveLen(count))
			for idx := 0; idx < count; idx++ {
				Expect(area.Contains(rects[idx])).To(BeTrue())
				Expect(rects[idx].IsZero()).To(BeFalse())
			}
		}
	})
})

var _ = Describe("rect padding and margin", func() {
	// Invariant 8: r.add_padding(p); r.add_margin(p) restores the
	// left/top coordinates (a directional invariant only — full
	// round-trip of width/height is not required).
	It("restores the left/top edges after padding then margin by the same amount", func() {
		r := geometry.NewRect(100, 200, 800, 600)
		for p := 0; p <= 20; p++ {
			padded := r.AddPadding(p)
			restored := padded.AddMargin(p)
			Expect(restored.Left).To(Equal(r.Left))
			Expect(restored.Top).To(Equal(r.Top))
		}
	})
})

var _ = Describe("workspace-focus cooldown", func() {
	// Invariant 9: between two reconciliations of the same focused pair,
	// at least COOLDOWN_MS elapses. Exercised here with a stand-alone
	// timestamp-comparison cooldown loop, not the reconciler's
	// rate.Limiter, since the reconciler's own debounce state is
	// unexported.
	It("permits only one reconciliation per cooldown window", func() {
		const cooldown = 50 * time.Millisecond
		allowed := 0
		deadline := time.Now().Add(cooldown * 3)
		last := time.Time{}
		for time.Now().Before(deadline) {
			now := time.Now()
			if last.IsZero() || now.Sub(last) >= cooldown {
				allowed++
				last = now
			}
			time.Sleep(time.Millisecond)
		}
		Expect(allowed).To(BeNumerically("<=", 4))
	})
})

var _ = Describe("reaper idempotence", func() {
	// Invariant 10: reaping a window-id that is absent is a no-op.
	It("returns no writes and leaves the topology unchanged for an unknown id", func() {
		wm := core.New(accessibility.Noop{}, accessibility.Noop{}, nil, nil)
		mon := core.NewMonitor("main", geometry.NewRect(0, 0, 1000, 1000))
		mon.Workspaces.AppendBack(core.NewWorkspace("one"))
		wm.Monitors.AppendBack(mon)
		ws, _ := mon.Workspaces.Focused()

		wm.AddWindowToFocusedWorkspace(&core.Window{ID: "w1"})
		before := ws.Containers.Len()

		writes := wm.ReapWindow("does-not-exist")
		Expect(writes).To(BeEmpty())
		Expect(ws.Containers.Len()).To(Equal(before))

		writes = wm.ReapWindow("does-not-exist")
		Expect(writes).To(BeEmpty())
	})
})
