// Package swarmlab is a small toolkit of swarm-intelligence searches.
//
// It brings together:
//
//	aco/       ant-colony path search on a directed, pheromone-weighted graph
//	dijkstra/  exact shortest paths on the same graph, the yardstick for aco
//	bfs/       hop-count reachability on the same graph
//	geo/       points, polygons, coverage grids and great-circle distance
//	placement/ randomised hill-climbing placement of coverage devices in a polygon
//	dataset/   CSV airport networks and GeoJSON polygons
//	config/    YAML run configuration
//
// The swarmlab command (cmd/swarmlab) runs both searches from files:
//
//	swarmlab route -airports airports.csv -routes routes.csv -from 1 -to 3
//	swarmlab place -polygon campus.geojson -config run.yaml
//
// Library packages never log and never read files; the command wires
// logging, metrics and signals around them through progress callbacks.
package swarmlab
