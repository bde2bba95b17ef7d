package note

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestDecode(t *testing.T) {
	data := []byte(`---
uid: 0c7a9b3e-1111-2222-3333-444455556666
created: 2023-04-01T10:30:00Z
alias: ab12
title: Grocery list
description: things to buy
notebook: home
tags:
- errands
- shopping
---
milk
eggs
`)

	n, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if n.UID != "0c7a9b3e-1111-2222-3333-444455556666" {
		t.Errorf("uid = %q", n.UID)
	}
	if n.Alias != "ab12" {
		t.Errorf("alias = %q", n.Alias)
	}
	if n.Title != "Grocery list" {
		t.Errorf("title = %q", n.Title)
	}
	if n.Notebook != "home" {
		t.Errorf("notebook = %q", n.Notebook)
	}
	if !reflect.DeepEqual(n.Tags, []string{"errands", "shopping"}) {
		t.Errorf("tags = %v", n.Tags)
	}
	want := time.Date(2023, 4, 1, 10, 30, 0, 0, time.UTC)
	if !n.Created.Equal(want) {
		t.Errorf("created = %v, want %v", n.Created, want)
	}
	if n.Body != "\nmilk\neggs\n" {
		t.Errorf("body = %q", n.Body)
	}
}

func TestDecodeNoHeader(t *testing.T) {
	if _, err := Decode([]byte("just some text\n")); !errors.Is(err, ErrMalformedNote) {
		t.Fatalf("err = %v, want ErrMalformedNote", err)
	}
}

func TestDecodeUnknownKeysIgnored(t *testing.T) {
	data := []byte("---\nuid: u1\nalias: ab12\ntitle: t\nnotebook: nb\nfuture_field: whatever\n---\nbody")
	n, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if n.UID != "u1" || n.Alias != "ab12" {
		t.Errorf("got uid=%q alias=%q", n.UID, n.Alias)
	}
}

func TestDecodeScalarTags(t *testing.T) {
	data := []byte("---\nuid: u1\nalias: ab12\ntitle: t\ntags: solo\n---\n")
	n, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if !reflect.DeepEqual(n.Tags, []string{"solo"}) {
		t.Errorf("tags = %v", n.Tags)
	}
}

func TestRoundTrip(t *testing.T) {
	orig := &Note{
		UID:         "u1",
		Alias:       "ab12",
		Title:       "Round trip",
		Description: "check fields survive",
		Notebook:    "work",
		Tags:        []string{"alpha", "beta"},
		Created:     time.Date(2023, 4, 1, 10, 30, 0, 0, time.UTC),
		Body:        "\n\nbody with\n  leading spaces\nand trailing newline\n\n",
	}

	data, err := Encode(orig)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}

	if got.UID != orig.UID || got.Alias != orig.Alias || got.Title != orig.Title ||
		got.Description != orig.Description || got.Notebook != orig.Notebook {
		t.Errorf("fields changed: %+v", got)
	}
	if !reflect.DeepEqual(got.Tags, orig.Tags) {
		t.Errorf("tags = %v, want %v", got.Tags, orig.Tags)
	}
	if !got.Created.Equal(orig.Created) {
		t.Errorf("created = %v, want %v", got.Created, orig.Created)
	}
	if got.Body != orig.Body {
		t.Errorf("body = %q, want %q", got.Body, orig.Body)
	}
}

func TestEncodeTagIndent(t *testing.T) {
	n := &Note{
		UID: "u1", Alias: "ab12", Title: "t", Notebook: "nb",
		Tags: []string{"alpha", "beta"},
	}
	data, err := Encode(n)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	text := string(data)
	if !strings.Contains(text, "- alpha") {
		t.Fatalf("tag entry missing:\n%s", text)
	}
	if strings.Contains(text, "    - alpha") {
		t.Errorf("tag entries use deep indent:\n%s", text)
	}
}

func TestRoundTripIdempotent(t *testing.T) {
	data := []byte("---\nuid: u1\nalias: ab12\ntitle: t\nnotebook: nb\n---\nbody text")

	first, err := Decode(data)
	if err != nil {
		t.Fatalf("first Decode: %v", err)
	}
	encoded, err := Encode(first)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	second, err := Decode(encoded)
	if err != nil {
		t.Fatalf("second Decode: %v", err)
	}

	if second.Body != first.Body {
		t.Errorf("body = %q, want %q", second.Body, first.Body)
	}
	if !reflect.DeepEqual(second, first) {
		t.Errorf("second = %+v, want %+v", second, first)
	}
}
