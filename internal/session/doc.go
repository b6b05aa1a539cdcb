// Package session ties the expression pipeline to the plot state.
//
// A [Session] accepts expression text, turns it into a curve
// (parse, domain selection, sampling) and keeps the curve registry and
// viewport controller the renderer reads from through [Session.Scene].
//
// # Example
//
//	s := session.New(session.Options{})
//	if _, err := s.Add("log(x, 2)"); err != nil {
//		fmt.Println(err)
//	}
//	s.View().Scroll(viewport.ScrollUp)
//	scene := s.Scene()
package session
