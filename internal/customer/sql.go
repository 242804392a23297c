package customer

const getAllCustomersSQL = `
SELECT id, first_name, last_name, phone, notes
FROM customers
ORDER BY last_name, first_name
`

const getBestCustomersSQL = `
SELECT c.id, c.first_name, c.last_name, c.phone, c.notes, COUNT(*) AS reservation_count
FROM reservations AS r
JOIN customers AS c ON r.customer_id = c.id
GROUP BY c.id, c.first_name, c.last_name, c.phone, c.notes
ORDER BY reservation_count DESC, c.last_name, c.first_name
LIMIT ?
`

// searchCustomersSQL matches either name column against either term.
const searchCustomersSQL = `
SELECT id, first_name, last_name, phone, notes
FROM customers
WHERE (first_name = ? OR last_name = ?)
   OR (first_name = ? OR last_name = ?)
ORDER BY last_name, first_name
`

const getCustomerSQL = `
SELECT id, first_name, last_name, phone, notes
FROM customers
WHERE id = ?
`

const createCustomerSQL = `
INSERT INTO customers (
    first_name, last_name, phone, notes
) VALUES (?, ?, ?, ?)
RETURNING id
`

const updateCustomerSQL = `
UPDATE customers
SET first_name = ?, last_name = ?, phone = ?, notes = ?
WHERE id = ?
`
