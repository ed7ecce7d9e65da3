package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"pfd/diagram"
	"pfd/routing"
)

// scene is the YAML document format accepted on input: a set of components
// and the connections to route between their grips.
type scene struct {
	Components []sceneComponent `yaml:"components"`
	Links      []sceneLink      `yaml:"links"`
}

type sceneComponent struct {
	ID     int            `yaml:"id"`
	X      float64        `yaml:"x"`
	Y      float64        `yaml:"y"`
	Width  float64        `yaml:"width"`
	Height float64        `yaml:"height"`
	Grips  []diagram.Grip `yaml:"grips,omitempty"`
}

type sceneLink struct {
	From     int `yaml:"from"`
	FromGrip int `yaml:"from_grip"`
	To       int `yaml:"to"`
	ToGrip   int `yaml:"to_grip"`
}

type routedLink struct {
	From int         `json:"from"`
	To   int         `json:"to"`
	Path [][]float64 `json:"path"`
}

func main() {
	var (
		inputFile  = flag.String("i", "", "Input scene file path (YAML)")
		configFile = flag.String("c", "", "Router config file path (optional)")
		output     = flag.String("o", "", "Output file path (default: stdout)")
	)

	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: input file required (-i)\n")
		flag.Usage()
		os.Exit(1)
	}

	content, err := os.ReadFile(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}

	var doc scene
	if err := yaml.Unmarshal(content, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing scene: %v\n", err)
		os.Exit(1)
	}

	config := routing.DefaultConfig()
	if *configFile != "" {
		config, err = routing.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	components := make([]*diagram.Component, 0, len(doc.Components))
	byID := make(map[int]*diagram.Component, len(doc.Components))
	for _, sc := range doc.Components {
		c := &diagram.Component{
			ID: sc.ID,
			Bounds: orb.Bound{
				Min: orb.Point{sc.X, sc.Y},
				Max: orb.Point{sc.X + sc.Width, sc.Y + sc.Height},
			},
			Grips: sc.Grips,
		}
		components = append(components, c)
		byID[c.ID] = c
	}

	router := routing.NewRouter(config)

	var results []routedLink
	var existing [][2]orb.Point
	for _, link := range doc.Links {
		from, ok := byID[link.From]
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown component %d\n", link.From)
			os.Exit(1)
		}
		to, ok := byID[link.To]
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown component %d\n", link.To)
			os.Exit(1)
		}

		conn := diagram.NewConnection(from, link.FromGrip)
		conn.SetEndGrip(to, link.ToGrip)
		conn.AutoRoute(router, components, existing, nil)
		existing = append(existing, conn.Segments()...)

		path := conn.Path()
		coords := make([][]float64, len(path))
		for i, p := range path {
			coords[i] = []float64{p[0], p[1]}
		}
		results = append(results, routedLink{From: link.From, To: link.To, Path: coords})
	}

	jsonData, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding output: %v\n", err)
		os.Exit(1)
	}

	if *output != "" {
		if err := os.WriteFile(*output, jsonData, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Routed %d connections to %s\n", len(results), *output)
	} else {
		fmt.Println(string(jsonData))
	}
}
