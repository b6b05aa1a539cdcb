package session_test

import (
	"math"

	"github.com/hashicorp/go-hclog"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/graphcalc/internal/config"
	"github.com/san-kum/graphcalc/internal/expr"
	"github.com/san-kum/graphcalc/internal/plot"
	"github.com/san-kum/graphcalc/internal/session"
	"github.com/san-kum/graphcalc/internal/viewport"
)

var _ = Describe("Session", func() {
	var s *session.Session

	BeforeEach(func() {
		s = session.New(session.Options{Logger: hclog.NewNullLogger()})
	})

	Describe("Add", func() {
		It("samples over the default domain", func() {
			c, err := s.Add("x**2")
			Expect(err).NotTo(HaveOccurred())
			Expect(c.X).To(HaveLen(plot.DefaultSamples))
			Expect(c.Y).To(HaveLen(plot.DefaultSamples))
			Expect(c.X[0]).To(Equal(-10.0))
			Expect(c.X[len(c.X)-1]).To(Equal(10.0))
			Expect(c.Label()).To(Equal("y = x**2"))
		})

		It("samples logarithms over the positive domain", func() {
			c, err := s.Add("log(x, 2)")
			Expect(err).NotTo(HaveOccurred())
			Expect(c.X[0]).To(Equal(0.1))
			Expect(c.X[len(c.X)-1]).To(Equal(10.0))
			for _, y := range c.Y {
				Expect(math.IsNaN(y)).To(BeFalse())
			}
		})

		It("keeps the entered text on the curve", func() {
			c, err := s.Add("log(x, 2)")
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Text).To(Equal("log(x, 2)"))
		})

		DescribeTable("rejects bad input without touching the registry",
			func(text string, kind error) {
				_, err := s.Add("x")
				Expect(err).NotTo(HaveOccurred())

				_, err = s.Add(text)
				Expect(err).To(MatchError(kind))
				var pe *expr.ParseError
				Expect(err).To(BeAssignableToTypeOf(pe))
				Expect(err.Error()).To(ContainSubstring(text))
				Expect(s.Curves()).To(HaveLen(1))
			},
			Entry("empty", "", expr.ErrEmpty),
			Entry("undeclared symbol", "y+1", expr.ErrUnknownSymbol),
			Entry("syntax", "x**", expr.ErrSyntax),
			Entry("arity", "sin(x, x)", expr.ErrArity),
		)

		It("falls back to the default sample count", func() {
			s = session.New(session.Options{Samples: -1})
			Expect(s.Samples()).To(Equal(plot.DefaultSamples))
		})

		It("assigns palette colors cyclically", func() {
			var curves []plot.Curve
			for i := 0; i < 9; i++ {
				c, err := s.Add("x")
				Expect(err).NotTo(HaveOccurred())
				curves = append(curves, c)
			}
			Expect(curves[8].Color).To(Equal(curves[0].Color))
			Expect(curves[1].Color).NotTo(Equal(curves[0].Color))
		})
	})

	Describe("Clear", func() {
		It("empties the registry and is idempotent", func() {
			_, _ = s.Add("x")
			_, _ = s.Add("sin(x)")
			s.Clear()
			Expect(s.Curves()).To(BeEmpty())
			s.Clear()
			Expect(s.Curves()).To(BeEmpty())
		})

		It("keeps the viewport", func() {
			s.View().Scroll(viewport.ScrollUp)
			s.Clear()
			Expect(s.Scene().Viewport.XMax).To(BeNumerically("~", 11, 1e-9))
		})
	})

	Describe("Scene", func() {
		It("reflects zoom and pan", func() {
			_, _ = s.Add("x")
			v := s.View()
			v.Press(viewport.ButtonPrimary, viewport.At(2, 3))
			v.Move(viewport.At(5, 3))
			v.Release()

			scene := s.Scene()
			Expect(scene.Curves).To(HaveLen(1))
			Expect(scene.Viewport.XMin).To(BeNumerically("~", -13, 1e-9))
			Expect(scene.Viewport.XMax).To(BeNumerically("~", 7, 1e-9))
			Expect(scene.Viewport.YMin).To(BeNumerically("~", -10, 1e-9))
		})
	})

	Describe("FromConfig", func() {
		It("uses the configured sampling and viewport", func() {
			cfg := config.DefaultConfig()
			cfg.Samples = 11
			cfg.Palette = []string{"#ff0000"}
			cfg.ApplyPreset("unit")

			s = session.FromConfig(cfg, nil)
			c, err := s.Add("x")
			Expect(err).NotTo(HaveOccurred())
			Expect(c.X).To(HaveLen(11))
			Expect(string(c.Color)).To(Equal("#ff0000"))
			Expect(s.Scene().Viewport).To(Equal(viewport.Viewport{XMin: -1, XMax: 1, YMin: -1, YMax: 1}))
		})
	})
})
