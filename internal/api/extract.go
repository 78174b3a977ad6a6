package api

// Records normalizes a decoded response body into a flat record sequence.
// The service is inconsistent about envelopes, so exactly four shapes are
// handled: {"results": [...]}, {"data": [...]}, a bare array, and a bare
// object (treated as a one-element sequence, even on list endpoints).
func Records(body interface{}) []map[string]interface{} {
	switch v := body.(type) {
	case map[string]interface{}:
		if results, ok := v["results"].([]interface{}); ok {
			return toRecords(results)
		}
		if data, ok := v["data"].([]interface{}); ok {
			return toRecords(data)
		}
		return []map[string]interface{}{v}
	case []interface{}:
		return toRecords(v)
	case nil:
		return nil
	default:
		// Scalar body: nothing tabular to show.
		return nil
	}
}

func toRecords(items []interface{}) []map[string]interface{} {
	records := make([]map[string]interface{}, len(items))
	for i, item := range items {
		// Non-object elements keep their slot so counts stay honest;
		// lookups on a nil map render as missing values.
		record, _ := item.(map[string]interface{})
		records[i] = record
	}
	return records
}
