package sqlinline

const QSelectUpcomingEvents = `--sql 8edab43a-fc53-4c1d-a29c-30a3bf01229f
select e.event_id, e.ngo_id, e.event_name, e.event_date, e.location, n.ngo_name
from event e
join ngo n on e.ngo_id = n.ngo_id
where e.event_date >= current_date
order by e.event_date asc;
`

const QSelectUpcomingEventsLimit = `--sql 4c96fd61-bd02-42bd-a3c3-2a041ca8230f
select e.event_id, e.ngo_id, e.event_name, e.event_date, e.location, n.ngo_name
from event e
join ngo n on e.ngo_id = n.ngo_id
where e.event_date >= current_date
order by e.event_date asc
limit $1::int;
`
