// Package navconfig loads declarative route trees from YAML.
//
// A configuration document mirrors the static part of a nav.Route tree:
// each node has a path template, an optional name, an optional static
// redirect target, and children:
//
//	routes:
//	  - path: /
//	    children:
//	      - path: family/:fid
//	        name: family
//	        children:
//	          - path: person/:pid
//	            name: person
//	      - path: old-families
//	        redirect_to: /
//
// Content builders are code, not configuration; Routes accepts a map
// that attaches them by route name or path after loading:
//
//	doc, err := navconfig.LoadFile("routes.yaml")
//	if err != nil {
//	    ...
//	}
//	rt, err := nav.New(doc.Build(map[string]nav.BuildFunc{
//	    "family": familyContent,
//	    "person": personContent,
//	    "/":      homeContent,
//	}))
//
// Inspection tooling that never renders content can call
// AttachPlaceholders on the converted tree instead, so it passes the
// router's leaf-usability validation.
package navconfig
