package water

// maxCorrectionPasses bounds the negative-depth fix-point iteration.
// Giving up after 5 passes lets the final depth clamp silently lose a
// small amount of mass; this is a documented quality/stability
// tradeoff, kept as-is rather than raised, since raising it only hides
// the same tradeoff further away.
const maxCorrectionPasses = 5

// updateFlow recomputes lFlow/tFlow for every column in row-major (v,u)
// order; traversal order is part of the contract. Flows are
// accumulated, not recomputed from scratch.
func (s *Solver) updateFlow(dt float64) {
	g := s.grid
	for v := 0; v < g.dc; v++ {
		for u := 0; u < g.wc; u++ {
			s.updateFlowAt(u, v, dt)
		}
	}
}

func (s *Solver) updateFlowAt(u, v int, dt float64) {
	g := s.grid
	col := &g.cols[v][u]
	totalH := col.TerrainH + col.Depth

	// Left edge.
	if u == 0 {
		col.LFlow = 0
	} else {
		neighbor := &g.cols[v][u-1]
		col.LFlow += s.edgeFlow(col, neighbor, totalH, s.gridSpaceX, s.pipeLenX, dt)
	}

	// Top edge.
	if v == 0 {
		col.TFlow = 0
	} else {
		neighbor := &g.cols[v-1][u]
		col.TFlow += s.edgeFlow(col, neighbor, totalH, s.gridSpaceZ, s.pipeLenZ, dt)
	}
	// Right and bottom flow are processed by the right/bottom column's
	// own left/top update — each edge is owned by exactly one column.
}

// edgeFlow computes the accumulated flow contribution across one
// interface, given the owning column, its left/top neighbor, the
// owning column's total surface height, the edge's grid spacing and
// pipe length. It returns the delta to add to the column's stored
// flow, or 0 under wall detection.
func (s *Solver) edgeFlow(col, neighbor *Column, totalH, gridSpace, pipeLen, dt float64) float64 {
	neighborH := neighbor.TerrainH + neighbor.Depth

	wallNeighbor := neighbor.Depth == 0 && neighbor.TerrainH > totalH
	wallSelf := col.Depth == 0 && col.TerrainH > neighborH
	if wallNeighbor || wallSelf {
		return 0
	}

	var hDiff, freeWaterH float64
	if totalH > neighborH {
		diff := totalH - neighborH
		freeWaterH = minFloat(diff, col.Depth)
		hDiff = -freeWaterH
	} else {
		diff := neighborH - totalH
		freeWaterH = minFloat(diff, neighbor.Depth)
		hDiff = freeWaterH
	}

	// Cross-section never shrinks below gridArea — a numerical floor,
	// not a physical derivation, deliberately making thin-water
	// interfaces livelier.
	area := gridSpace * freeWaterH
	if area < s.gridArea {
		area = s.gridArea
	}

	return area * (gravity / pipeLen) * hDiff * dt
}

// correctNegativeDepth rescales outgoing (negative) flows wherever
// applying them as-is would drive a column's depth below zero. It
// iterates row-major like every other pass, so a correction made to a
// neighbor's shared edge is visible to later cells in the same pass —
// the traversal order is part of the contract.
func (s *Solver) correctNegativeDepth(dt float64) {
	g := s.grid
	for pass := 0; pass < maxCorrectionPasses; pass++ {
		correctedAny := false
		for v := 0; v < g.dc; v++ {
			for u := 0; u < g.wc; u++ {
				if s.correctCellAt(u, v, dt) {
					correctedAny = true
				}
			}
		}
		if !correctedAny {
			return
		}
	}
}

func (s *Solver) correctCellAt(u, v int, dt float64) bool {
	g := s.grid
	col := &g.cols[v][u]

	lFlow := col.LFlow
	tFlow := col.TFlow
	var rFlow, bFlow float64
	hasRight := u < g.wc-1
	hasBottom := v < g.dc-1
	if hasRight {
		rFlow = -g.cols[v][u+1].LFlow
	}
	if hasBottom {
		bFlow = -g.cols[v+1][u].TFlow
	}

	var totPos, totNeg float64
	for _, f := range []float64{lFlow, tFlow, rFlow, bFlow} {
		if f < 0 {
			totNeg += f
		} else {
			totPos += f
		}
	}

	total := lFlow + tFlow + rFlow + bFlow
	newDepth := col.Depth + (total/s.gridArea)*dt
	if newDepth >= 0 {
		return false
	}
	if totNeg == 0 {
		// No negative contribution to scale down against; nothing this
		// pass can do (depth will be clamped to zero in updateDepth).
		return false
	}

	totPosDepth := (totPos / s.gridArea) * dt
	desiredNegDepth := -col.Depth + totPosDepth
	correctedNegFlow := (desiredNegDepth * s.gridArea) / dt
	ratio := correctedNegFlow / totNeg

	if lFlow < 0 {
		col.LFlow *= ratio
	}
	if tFlow < 0 {
		col.TFlow *= ratio
	}
	if hasRight && rFlow < 0 {
		g.cols[v][u+1].LFlow *= ratio
	}
	if hasBottom && bFlow < 0 {
		g.cols[v+1][u].TFlow *= ratio
	}
	return true
}

// updateDepth applies the net incoming flow to each column's depth,
// clamping at zero as a safety net beyond the correction pass.
func (s *Solver) updateDepth(dt float64) {
	g := s.grid
	for v := 0; v < g.dc; v++ {
		for u := 0; u < g.wc; u++ {
			col := &g.cols[v][u]
			total := col.LFlow + col.TFlow
			if u < g.wc-1 {
				total -= g.cols[v][u+1].LFlow
			}
			if v < g.dc-1 {
				total -= g.cols[v+1][u].TFlow
			}
			col.Depth += (total / s.gridArea) * dt
			if col.Depth < 0 {
				col.Depth = 0
			}
		}
	}
}
