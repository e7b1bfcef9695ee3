// Package ecs provides ECS adapters for reach.
package ecs
