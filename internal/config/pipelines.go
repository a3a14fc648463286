package config

const shadeGroup = `  - colors:
      - label: jet
        expr: jet
      - label: lighten_2
        expr: lighten(jet, 0.02)
      - label: lighten_4
        expr: lighten(jet, 0.04)
      - label: lighten_6
        expr: lighten(jet, 0.06)
      - label: lighten_8
        expr: lighten(jet, 0.08)
      - label: darken_2
        expr: darken(jet, 0.02)
      # lighten(desaturate(lighten($jet, 4%), 100%), 14%)
      - label: borders_gray
        expr: lighten(desaturate(lighten(jet, 0.04)), 0.14)
      # transparentize(lighten($jet, 2%), 0.025)
      - label: osd_rgba
        expr: transparentize(lighten(jet, 0.02), 0.025)
`

// GTK dark variant surface colors, keeping the blue-tinted chain consistent
const gtkGroup = `  - prefix: gtk_
    colors:
      - name: base_color
        expr: lighten(jet, 0.06)
      - name: bg_color
        expr: lighten(jet, 0.08)
      - name: menu_color
        expr: lighten(jet, 0.02)
      - name: borders_color
        expr: darken(bg_color, 0.10)
      - name: headerbar_bg_color
        expr: darken(bg_color, 0.03)
      - name: menu_selected_color
        expr: lighten(bg_color, 0.06)
      - name: scrollbar_bg_color
        expr: mix(base_color, bg_color, 0.5)
      - name: sidebar_bg_color
        expr: mix(bg_color, base_color, 0.5)
      - name: insensitive_bg_color
        expr: mix(bg_color, base_color, 0.6)
      - name: backdrop_base_color
        expr: lighten(base_color, 0.03)
      - name: backdrop_bg_color
        expr: lighten(bg_color, 0.03)
      - name: backdrop_borders_color
        expr: mix(borders_color, bg_color, 0.8)
      - name: backdrop_dark_fill
        expr: mix(backdrop_borders_color, backdrop_bg_color, 0.35)
      - name: backdrop_insensitive_color
        expr: lighten(backdrop_bg_color, 0.15)
`

// ShortPipeline contains the shade, border and OSD replacements only
const ShortPipeline = `name: short
description: Shades, borders and OSD background derived from $jet
base: jet
groups:
` + shadeGroup

// ExtendedPipeline adds the GTK derived backgrounds after the short rows
const ExtendedPipeline = `name: extended
description: Short pipeline plus GTK surface and backdrop colors
base: jet
groups:
` + shadeGroup + gtkGroup
