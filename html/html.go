/*
Package html creates text buffers from HTML input.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021–26, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package html

import (
	"errors"
	"io"

	"github.com/npillmayer/treaps/text"
	"golang.org/x/net/html"
)

// ErrNoNode is returned for a nil HTML node.
var ErrNoNode = errors.New("html: no node")

// InnerText creates a text buffer for the textual content of an HTML element
// and all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling
// suppressing the visibility of the node's descendents).
func InnerText(n *html.Node) (*text.Buffer, error) {
	if n == nil {
		return nil, ErrNoNode
	}
	b := text.NewBuffer()
	collectText(n, b)
	return b, nil
}

func collectText(n *html.Node, b *text.Buffer) {
	if n.Type == html.TextNode {
		b.Append(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// TextFromHTML creates a text buffer from the textual content of an HTML
// fragment. It does no interpretation of layout and styling, but extracts
// the pure text.
func TextFromHTML(input io.Reader) (*text.Buffer, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	b := text.NewBuffer()
	for _, n := range nodes {
		collectText(n, b)
	}
	return b, nil
}
